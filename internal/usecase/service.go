package usecase

import (
	"cinebook/internal/data/repository"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog      CatalogService
	Availability AvailabilityService
	Session      SessionService
	Ledger       LedgerService
	Auth         AuthService
	User         UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, log)
	ledger := NewLedgerService(repo, log)
	session := NewSessionService(repo, availability, ledger, log)

	return &Service{
		Catalog:      NewCatalogService(repo, log),
		Availability: availability,
		Session:      session,
		Ledger:       ledger,
		Auth:         NewAuthService(repo, session, log),
		User:         NewUserService(repo, log),
	}
}
