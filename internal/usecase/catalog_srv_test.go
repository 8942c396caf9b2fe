package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestCatalog(t *testing.T) (CatalogService, *repository.Repository) {
	t.Helper()
	repo := repository.NewRepository(nil, zap.NewNop())
	return NewCatalogService(repo, zap.NewNop()), repo
}

func validMovieRequest() *request.MovieRequest {
	return &request.MovieRequest{
		Title:             "Kalki 2898 AD",
		PosterURL:         "https://picsum.photos/seed/kalki/400/600",
		Language:          "Telugu",
		Genre:             "Sci-Fi",
		DurationInMinutes: 180,
		Rating:            8.5,
		ReleaseDate:       "2024-06-27",
	}
}

func TestCreateAndGetMovie(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, validMovieRequest())
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}

	got, err := svc.GetMovieByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if got.Title != "Kalki 2898 AD" || got.Language != entity.LanguageTelugu {
		t.Errorf("got %q/%s", got.Title, got.Language)
	}

	movies, err := svc.GetMovies(ctx)
	if err != nil {
		t.Fatalf("list movies: %v", err)
	}
	if len(movies) != 1 {
		t.Errorf("got %d movies, want 1", len(movies))
	}
}

func TestCreateMovieValidation(t *testing.T) {
	svc, _ := newTestCatalog(t)

	cases := []struct {
		name   string
		mutate func(*request.MovieRequest)
	}{
		{"missing title", func(r *request.MovieRequest) { r.Title = "" }},
		{"bad poster url", func(r *request.MovieRequest) { r.PosterURL = "not-a-url" }},
		{"unknown language", func(r *request.MovieRequest) { r.Language = "Klingon" }},
		{"zero duration", func(r *request.MovieRequest) { r.DurationInMinutes = 0 }},
		{"rating too high", func(r *request.MovieRequest) { r.Rating = 11 }},
		{"bad release date", func(r *request.MovieRequest) { r.ReleaseDate = "27-06-2024" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validMovieRequest()
			c.mutate(req)

			_, err := svc.CreateMovie(context.Background(), req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
		})
	}
}

func TestGetMovieNotFound(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.GetMovieByID(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}

	var vErr *ValidationError
	_, err = svc.GetMovieByID(context.Background(), "not-a-uuid")
	if !errors.As(err, &vErr) {
		t.Errorf("malformed id: got %v, want ValidationError", err)
	}
}

func TestUpdateMovie(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, validMovieRequest())
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}

	req := validMovieRequest()
	req.Rating = 9.1
	updated, err := svc.UpdateMovie(ctx, created.ID.String(), req)
	if err != nil {
		t.Fatalf("update movie: %v", err)
	}
	if updated.Rating != 9.1 {
		t.Errorf("rating = %v, want 9.1", updated.Rating)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update changed CreatedAt")
	}

	_, err = svc.UpdateMovie(ctx, uuid.NewString(), validMovieRequest())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestDeleteMovieMissingLeavesCatalog(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	if _, err := svc.CreateMovie(ctx, validMovieRequest()); err != nil {
		t.Fatalf("create movie: %v", err)
	}

	err := svc.DeleteMovie(ctx, uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	movies, err := svc.GetMovies(ctx)
	if err != nil {
		t.Fatalf("list movies: %v", err)
	}
	if len(movies) != 1 {
		t.Errorf("failed delete changed the catalog: %d movies", len(movies))
	}
}

func TestAddChainDuplicate(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	if err := svc.AddChain(ctx, &request.ChainRequest{Name: "PVR Cinemas"}); err != nil {
		t.Fatalf("add chain: %v", err)
	}

	before, err := svc.ListChains(ctx)
	if err != nil {
		t.Fatalf("list chains: %v", err)
	}

	err = svc.AddChain(ctx, &request.ChainRequest{Name: "PVR Cinemas"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("got %v, want ErrDuplicate", err)
	}

	after, err := svc.ListChains(ctx)
	if err != nil {
		t.Fatalf("list chains: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("rejected add changed the list: %v -> %v", before, after)
	}
}

func TestDeleteChain(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	if err := svc.AddChain(ctx, &request.ChainRequest{Name: "INOX Leisure"}); err != nil {
		t.Fatalf("add chain: %v", err)
	}
	if err := svc.DeleteChain(ctx, "INOX Leisure"); err != nil {
		t.Fatalf("delete chain: %v", err)
	}
	if err := svc.DeleteChain(ctx, "INOX Leisure"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestPricing(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	pricing, err := svc.GetPricing(ctx)
	if err != nil {
		t.Fatalf("get pricing: %v", err)
	}
	if pricing.Standard != 250 || pricing.Premium != 400 {
		t.Errorf("default pricing = %+v, want 250/400", pricing)
	}

	var vErr *ValidationError
	_, err = svc.UpdatePricing(ctx, &request.PricingRequest{Standard: 0, Premium: 400})
	if !errors.As(err, &vErr) {
		t.Errorf("zero standard: got %v, want ValidationError", err)
	}

	updated, err := svc.UpdatePricing(ctx, &request.PricingRequest{Standard: 300, Premium: 500})
	if err != nil {
		t.Fatalf("update pricing: %v", err)
	}
	if updated.Standard != 300 || updated.Premium != 500 {
		t.Errorf("updated pricing = %+v", updated)
	}

	got, err := svc.GetPricing(ctx)
	if err != nil {
		t.Fatalf("get pricing: %v", err)
	}
	if got != updated {
		t.Errorf("stored pricing = %+v, want %+v", got, updated)
	}
}
