package repository

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgChainRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPgChainRepository(db database.PgxIface, log *zap.Logger) ChainRepository {
	return &pgChainRepository{
		db:  db,
		log: log.With(zap.String("repository", "chain_pg")),
	}
}

func (r *pgChainRepository) List(ctx context.Context) ([]string, error) {
	// position keeps the modulo-index order stable across restarts
	rows, err := r.db.Query(ctx, `SELECT name FROM theater_chains ORDER BY position`)
	if err != nil {
		r.log.Error("Failed to list theater chains", zap.Error(err))
		return nil, fmt.Errorf("list chains: %w", err)
	}
	defer rows.Close()

	var chains []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan chain: %w", err)
		}
		chains = append(chains, name)
	}

	return chains, rows.Err()
}

func (r *pgChainRepository) Add(ctx context.Context, name string) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM theater_chains WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check theater chain", zap.Error(err), zap.String("name", name))
		return fmt.Errorf("check chain: %w", err)
	}
	if exists {
		return ErrDuplicate
	}

	if _, err := r.db.Exec(ctx,
		`INSERT INTO theater_chains (name) VALUES ($1)`, name,
	); err != nil {
		r.log.Error("Failed to add theater chain", zap.Error(err), zap.String("name", name))
		return fmt.Errorf("add chain: %w", err)
	}

	return nil
}

func (r *pgChainRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM theater_chains WHERE name = $1`, name)
	if err != nil {
		r.log.Error("Failed to delete theater chain", zap.Error(err), zap.String("name", name))
		return fmt.Errorf("delete chain: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

type pgPricingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPgPricingRepository(db database.PgxIface, log *zap.Logger) PricingRepository {
	return &pgPricingRepository{
		db:  db,
		log: log.With(zap.String("repository", "pricing_pg")),
	}
}

func (r *pgPricingRepository) Get(ctx context.Context) (entity.Pricing, error) {
	var pricing entity.Pricing
	err := r.db.QueryRow(ctx,
		`SELECT standard_price, premium_price FROM pricing WHERE id = 1`,
	).Scan(&pricing.Standard, &pricing.Premium)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Pricing{Standard: 250, Premium: 400}, nil
	}
	if err != nil {
		r.log.Error("Failed to get pricing", zap.Error(err))
		return entity.Pricing{}, fmt.Errorf("get pricing: %w", err)
	}

	return pricing, nil
}

func (r *pgPricingRepository) Update(ctx context.Context, pricing entity.Pricing) error {
	query := `
		INSERT INTO pricing (id, standard_price, premium_price)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET standard_price = EXCLUDED.standard_price,
		    premium_price = EXCLUDED.premium_price
	`

	if _, err := r.db.Exec(ctx, query, pricing.Standard, pricing.Premium); err != nil {
		r.log.Error("Failed to update pricing", zap.Error(err))
		return fmt.Errorf("update pricing: %w", err)
	}

	return nil
}
