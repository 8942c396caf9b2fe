package usecase

import (
	"context"
	"fmt"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService serves profiles and the remembered per-user preferences
// (theme, language, state, city).
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (entity.Preferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *request.PreferencesRequest) (entity.Preferences, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return user, nil
}

func (s *userService) GetPreferences(ctx context.Context, userID uuid.UUID) (entity.Preferences, error) {
	prefs, err := s.repo.Pref.Get(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get preferences", zap.Error(err), zap.String("user_id", userID.String()))
		return entity.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences applies the supplied fields. Changing the state resets
// the remembered city unless the same request also picks one, since the old
// city no longer belongs to the new state.
func (s *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *request.PreferencesRequest) (entity.Preferences, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update preferences validation failed", zap.Error(err))
		return entity.Preferences{}, err
	}

	prefs, err := s.repo.Pref.Get(ctx, userID)
	if err != nil {
		return entity.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}

	if req.Theme != nil {
		prefs.Theme = entity.Theme(*req.Theme)
	}
	if req.Language != nil {
		prefs.Language = *req.Language
	}
	if req.State != nil {
		if _, ok := entity.StateCities[*req.State]; !ok {
			return entity.Preferences{}, NewValidationError("state", "Unknown state")
		}
		if *req.State != prefs.State {
			prefs.City = ""
		}
		prefs.State = *req.State
	}
	if req.City != nil {
		if !cityInState(prefs.State, *req.City) {
			return entity.Preferences{}, NewValidationError("city", fmt.Sprintf("Not a city of %s", prefs.State))
		}
		prefs.City = *req.City
	}

	if err := s.repo.Pref.Put(ctx, userID, prefs); err != nil {
		s.log.Error("Failed to save preferences", zap.Error(err), zap.String("user_id", userID.String()))
		return entity.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}

	s.log.Info("Preferences updated",
		zap.String("user_id", userID.String()),
		zap.String("state", prefs.State),
		zap.String("city", prefs.City),
	)
	return prefs, nil
}

func cityInState(state, city string) bool {
	for _, c := range entity.StateCities[state] {
		if c == city {
			return true
		}
	}
	return false
}
