package wire

import (
	"cinebook/internal/adaptor"
	"cinebook/internal/data/repository"
	"cinebook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Chain and pricing management is admin-only
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/chains", catalogHandler.ListChains)            // GET /api/admin/chains
		r.Post("/chains", catalogHandler.AddChain)             // POST /api/admin/chains
		r.Delete("/chains/{name}", catalogHandler.DeleteChain) // DELETE /api/admin/chains/{name}

		r.Get("/pricing", catalogHandler.GetPricing)    // GET /api/admin/pricing
		r.Put("/pricing", catalogHandler.UpdatePricing) // PUT /api/admin/pricing
	})
}
