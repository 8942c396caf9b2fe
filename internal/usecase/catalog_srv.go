package usecase

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService owns the admin-editable catalog: movies, theater-chain
// names and the pricing table.
type CatalogService interface {
	GetMovies(ctx context.Context) ([]*entity.Movie, error)
	GetMovieByID(ctx context.Context, movieID string) (*entity.Movie, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, movieID string) error

	ListChains(ctx context.Context) ([]string, error)
	AddChain(ctx context.Context, req *request.ChainRequest) error
	DeleteChain(ctx context.Context, name string) error

	GetPricing(ctx context.Context) (entity.Pricing, error)
	UpdatePricing(ctx context.Context, req *request.PricingRequest) (entity.Pricing, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMovies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return movies, nil
}

func (s *catalogService) GetMovieByID(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format", zap.String("movie_id", movieID), zap.Error(err))
		return nil, NewValidationError("id", "Must be a valid UUID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	return movie, nil
}

func (s *catalogService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	movie, err := movieFromRequest(uuid.New(), req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)
	return movie, nil
}

func (s *catalogService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, NewValidationError("id", "Must be a valid UUID")
	}

	if err := validateRequest(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return nil, err
	}

	// Whole-record replacement: the stored movie is overwritten in place.
	existing, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	movie, err := movieFromRequest(id, req)
	if err != nil {
		return nil, err
	}
	movie.CreatedAt = existing.CreatedAt

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)
	return movie, nil
}

// DeleteMovie removes a movie, reporting ErrNotFound for an unknown id.
// Booking sessions already referencing the movie keep their snapshot;
// deletion does not invalidate them.
func (s *catalogService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return NewValidationError("id", "Must be a valid UUID")
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
		}
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

func (s *catalogService) ListChains(ctx context.Context) ([]string, error) {
	chains, err := s.repo.Chain.List(ctx)
	if err != nil {
		s.log.Error("Failed to list theater chains", zap.Error(err))
		return nil, fmt.Errorf("list chains: %w", err)
	}
	return chains, nil
}

func (s *catalogService) AddChain(ctx context.Context, req *request.ChainRequest) error {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Add chain validation failed", zap.Error(err))
		return err
	}

	if err := s.repo.Chain.Add(ctx, req.Name); err != nil {
		if err == repository.ErrDuplicate {
			return fmt.Errorf("chain %q: %w", req.Name, ErrDuplicate)
		}
		s.log.Error("Failed to add theater chain", zap.Error(err), zap.String("name", req.Name))
		return fmt.Errorf("add chain: %w", err)
	}

	s.log.Info("Theater chain added", zap.String("name", req.Name))
	return nil
}

// DeleteChain removes a chain name. Previously derived theaters are not
// touched (they are ephemeral); future derivation simply has one fewer
// candidate name, which shifts the modulo-indexed pick for every city.
func (s *catalogService) DeleteChain(ctx context.Context, name string) error {
	if err := s.repo.Chain.Delete(ctx, name); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("chain %q: %w", name, ErrNotFound)
		}
		s.log.Error("Failed to delete theater chain", zap.Error(err), zap.String("name", name))
		return fmt.Errorf("delete chain: %w", err)
	}

	s.log.Info("Theater chain deleted", zap.String("name", name))
	return nil
}

func (s *catalogService) GetPricing(ctx context.Context) (entity.Pricing, error) {
	pricing, err := s.repo.Pricing.Get(ctx)
	if err != nil {
		s.log.Error("Failed to get pricing", zap.Error(err))
		return entity.Pricing{}, fmt.Errorf("get pricing: %w", err)
	}
	return pricing, nil
}

func (s *catalogService) UpdatePricing(ctx context.Context, req *request.PricingRequest) (entity.Pricing, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update pricing validation failed", zap.Error(err))
		return entity.Pricing{}, err
	}

	pricing := entity.Pricing{Standard: req.Standard, Premium: req.Premium}
	if err := s.repo.Pricing.Update(ctx, pricing); err != nil {
		s.log.Error("Failed to update pricing", zap.Error(err))
		return entity.Pricing{}, fmt.Errorf("update pricing: %w", err)
	}

	s.log.Info("Pricing updated",
		zap.Int("standard", pricing.Standard),
		zap.Int("premium", pricing.Premium),
	)
	return pricing, nil
}

func movieFromRequest(id uuid.UUID, req *request.MovieRequest) (*entity.Movie, error) {
	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, NewValidationError("release_date", "Must be a date in 2006-01-02 format")
	}
	if !entity.ValidLanguage(req.Language) {
		return nil, NewValidationError("language", "Unknown language")
	}

	now := time.Now()
	return &entity.Movie{
		ID:                id,
		Title:             req.Title,
		PosterURL:         req.PosterURL,
		Language:          entity.Language(req.Language),
		Genre:             req.Genre,
		DurationInMinutes: req.DurationInMinutes,
		Rating:            req.Rating,
		Description:       req.Description,
		ReleaseDate:       releaseDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
