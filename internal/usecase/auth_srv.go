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
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// AuthService is mock authentication: demo accounts, bcrypt-checked
// passwords, uuid bearer tokens. Advisory only; nothing here defends
// against a hostile client.
type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, uuid.UUID, error)
	Logout(ctx context.Context, token uuid.UUID) error
}

type authService struct {
	repo     *repository.Repository
	sessions SessionService
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, sessions SessionService, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, uuid.UUID, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, uuid.Nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err), zap.String("email", req.Email))
		return nil, uuid.Nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, uuid.Nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Password mismatch", zap.String("email", req.Email))
		return nil, uuid.Nil, ErrInvalidCredentials
	}

	session := &entity.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("email", req.Email))
		return nil, uuid.Nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)
	return user, session.Token, nil
}

// Logout deletes the auth session and clears any in-progress booking
// selection tied to it.
func (s *authService) Logout(ctx context.Context, token uuid.UUID) error {
	if err := s.repo.Session.Delete(ctx, token); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("session: %w", ErrNotFound)
		}
		s.log.Error("Failed to delete session", zap.Error(err))
		return fmt.Errorf("delete session: %w", err)
	}

	s.sessions.Clear(ctx, token)

	s.log.Info("User logged out", zap.String("token", token.String()))
	return nil
}
