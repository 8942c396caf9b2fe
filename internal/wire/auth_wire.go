package wire

import (
	"cinebook/internal/adaptor"
	"cinebook/internal/data/repository"
	"cinebook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/auth/login - Exchange credentials for a session token
	r.Post("/api/auth/login", authHandler.Login)

	// POST /api/auth/logout - Invalidate the current session
	r.Route("/api/auth/logout", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", authHandler.Logout)
	})
}
