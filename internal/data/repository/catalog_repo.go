package repository

import (
	"context"
	"sync"

	"cinebook/internal/data/entity"

	"go.uber.org/zap"
)

// ChainRepository holds the theater-chain name set. Order matters: the
// availability generator indexes into the list by modulo, so insertion order
// must be preserved and deletions shift every index after them.
type ChainRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}

type PricingRepository interface {
	Get(ctx context.Context) (entity.Pricing, error)
	Update(ctx context.Context, pricing entity.Pricing) error
}

type memoryChainRepository struct {
	mu     sync.RWMutex
	chains []string
	log    *zap.Logger
}

func NewMemoryChainRepository(log *zap.Logger) ChainRepository {
	return &memoryChainRepository{
		log: log.With(zap.String("repository", "chain")),
	}
}

func (r *memoryChainRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chains := make([]string, len(r.chains))
	copy(chains, r.chains)
	return chains, nil
}

func (r *memoryChainRepository) Add(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.chains {
		if existing == name { // case-sensitive exact match
			return ErrDuplicate
		}
	}

	r.chains = append(r.chains, name)
	return nil
}

func (r *memoryChainRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.chains {
		if existing == name {
			r.chains = append(r.chains[:i], r.chains[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memoryPricingRepository struct {
	mu      sync.RWMutex
	pricing entity.Pricing
	log     *zap.Logger
}

func NewMemoryPricingRepository(log *zap.Logger) PricingRepository {
	return &memoryPricingRepository{
		pricing: entity.Pricing{Standard: 250, Premium: 400},
		log:     log.With(zap.String("repository", "pricing")),
	}
}

func (r *memoryPricingRepository) Get(ctx context.Context) (entity.Pricing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pricing, nil
}

func (r *memoryPricingRepository) Update(ctx context.Context, pricing entity.Pricing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// wholesale replace, previous table is discarded
	r.pricing = pricing
	return nil
}
