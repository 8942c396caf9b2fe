package repository

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedDemoData(t *testing.T) {
	repo := NewRepository(nil, zap.NewNop())
	ctx := context.Background()

	if err := SeedDemoData(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	movies, err := repo.Movie.FindAll(ctx)
	if err != nil {
		t.Fatalf("list movies: %v", err)
	}
	if len(movies) != len(seedMovies) {
		t.Errorf("got %d movies, want %d", len(movies), len(seedMovies))
	}

	chains, err := repo.Chain.List(ctx)
	if err != nil {
		t.Fatalf("list chains: %v", err)
	}
	if len(chains) != len(seedChains) {
		t.Errorf("got %d chains, want %d", len(chains), len(seedChains))
	}

	for _, email := range []string{"user@test.com", "admin@test.com"} {
		user, err := repo.User.FindByEmail(ctx, email)
		if err != nil {
			t.Fatalf("find %s: %v", email, err)
		}
		if user == nil {
			t.Fatalf("demo account %s not seeded", email)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
			t.Errorf("%s: demo password rejected: %v", email, err)
		}
	}
}

func TestSeedDemoDataIdempotent(t *testing.T) {
	repo := NewRepository(nil, zap.NewNop())
	ctx := context.Background()

	if err := SeedDemoData(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedDemoData(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	movies, err := repo.Movie.FindAll(ctx)
	if err != nil {
		t.Fatalf("list movies: %v", err)
	}
	if len(movies) != len(seedMovies) {
		t.Errorf("reseed duplicated movies: %d", len(movies))
	}

	chains, err := repo.Chain.List(ctx)
	if err != nil {
		t.Fatalf("list chains: %v", err)
	}
	if len(chains) != len(seedChains) {
		t.Errorf("reseed duplicated chains: %d", len(chains))
	}
}
