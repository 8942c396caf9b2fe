package wire

import (
	"cinebook/internal/adaptor"
	"cinebook/internal/data/repository"
	"cinebook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All profile routes require a valid session
	r.Route("/api/profile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", userHandler.GetProfile)                   // GET /api/profile
		r.Get("/preferences", userHandler.GetPreferences)    // GET /api/profile/preferences
		r.Put("/preferences", userHandler.UpdatePreferences) // PUT /api/profile/preferences
	})
}
