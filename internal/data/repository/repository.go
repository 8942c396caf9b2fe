package repository

import (
	"cinebook/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie   MovieRepository
	Chain   ChainRepository
	Pricing PricingRepository
	Booking BookingRepository
	User    UserRepository
	Session SessionRepository
	Pref    PrefRepository
}

// NewRepository wires every repository. With a nil db everything runs in
// memory. With a Postgres pool the catalog (movies, chains, pricing) and the
// booking ledger persist there; users, sessions and preferences stay in
// memory either way since they are scoped to the running process.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := &Repository{
		Movie:   NewMemoryMovieRepository(log),
		Chain:   NewMemoryChainRepository(log),
		Pricing: NewMemoryPricingRepository(log),
		Booking: NewMemoryBookingRepository(log),
		User:    NewMemoryUserRepository(log),
		Session: NewMemorySessionRepository(log),
		Pref:    NewMemoryPrefRepository(log),
	}

	if db != nil {
		repo.Movie = NewPgMovieRepository(db, log)
		repo.Chain = NewPgChainRepository(db, log)
		repo.Pricing = NewPgPricingRepository(db, log)
		repo.Booking = NewPgBookingRepository(db, log)
	}

	return repo
}
