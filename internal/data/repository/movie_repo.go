package repository

import (
	"context"
	"sync"

	"cinebook/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// memoryMovieRepository keeps movies in a map plus an insertion-order list
// so FindAll is stable across calls.
type memoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[uuid.UUID]*entity.Movie
	order  []uuid.UUID
	log    *zap.Logger
}

func NewMemoryMovieRepository(log *zap.Logger) MovieRepository {
	return &memoryMovieRepository{
		movies: make(map[uuid.UUID]*entity.Movie),
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *memoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; ok {
		return ErrDuplicate
	}

	stored := *movie
	r.movies[movie.ID] = &stored
	r.order = append(r.order, movie.ID)
	return nil
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}

	found := *movie
	return &found, nil
}

func (r *memoryMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(r.order))
	for _, id := range r.order {
		movie := *r.movies[id]
		movies = append(movies, &movie)
	}
	return movies, nil
}

func (r *memoryMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; !ok {
		return ErrNotFound
	}

	stored := *movie
	r.movies[movie.ID] = &stored
	return nil
}

func (r *memoryMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return ErrNotFound
	}

	delete(r.movies, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
