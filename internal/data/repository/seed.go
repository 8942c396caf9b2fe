package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinebook/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var seedChains = []string{
	"PVR Cinemas", "INOX Leisure", "Cinepolis", "SPI Cinemas", "AGS Cinemas",
	"Luxe Cinemas", "Gopalan Cinemas", "Carnival Cinemas", "Miraj Cinemas", "Mayajaal",
}

type seedMovie struct {
	title       string
	posterURL   string
	language    entity.Language
	genre       string
	duration    int
	rating      float64
	description string
	releaseDate string
}

var seedMovies = []seedMovie{
	{"Kalki 2898 AD", "https://picsum.photos/seed/kalki/400/600", entity.LanguageTelugu, "Sci-Fi", 180, 8.5,
		"A modern-day avatar of the Hindu god Vishnu, who is believed to have descended to Earth to protect the world from evil forces.", "2024-06-27"},
	{"Pushpa 2: The Rule", "https://picsum.photos/seed/pushpa2/400/600", entity.LanguageTelugu, "Action", 170, 9.0,
		"Pushpa's rise in the world of red sandalwood smuggling is challenged by new enemies and old foes.", "2024-08-15"},
	{"Indian 2", "https://picsum.photos/seed/indian2/400/600", entity.LanguageTamil, "Action", 165, 8.2,
		"An aged freedom fighter returns to India to fight corruption and injustice.", "2024-07-12"},
	{"Singham Again", "https://picsum.photos/seed/singham3/400/600", entity.LanguageHindi, "Action", 155, 7.8,
		"The fearless cop Bajirao Singham is back to take on a new and more dangerous enemy.", "2024-11-01"},
	{"L2: Empuraan", "https://picsum.photos/seed/l2/400/600", entity.LanguageMalayalam, "Thriller", 175, 8.8,
		"The follow-up to the blockbuster Lucifer, exploring the past and future of Stephen Nedumpally.", "2024-12-20"},
	{"Kantara: Chapter 1", "https://picsum.photos/seed/kantara1/400/600", entity.LanguageKannada, "Fantasy", 160, 8.9,
		"A prequel to Kantara, delving into the origins of the legend.", "2024-12-31"},
	{"Inside Out 2", "https://picsum.photos/seed/insideout2/400/600", entity.LanguageEnglish, "Animation", 96, 8.1,
		"Riley is now a teenager, and new emotions are introduced in Headquarters.", "2024-06-14"},
	{"A Quiet Place: Day One", "https://picsum.photos/seed/quietplace/400/600", entity.LanguageEnglish, "Horror", 100, 7.5,
		"Experience the day the world went quiet.", "2024-06-28"},
}

// SeedDemoData loads the demo catalog and the two demo accounts. Movies and
// chains are only seeded into an empty catalog so a persistent database is
// not reseeded on every boot.
func SeedDemoData(ctx context.Context, repo *Repository, log *zap.Logger) error {
	movies, err := repo.Movie.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: list movies: %w", err)
	}

	if len(movies) == 0 {
		now := time.Now()
		for _, m := range seedMovies {
			releaseDate, err := time.Parse("2006-01-02", m.releaseDate)
			if err != nil {
				return fmt.Errorf("seed: parse release date %q: %w", m.releaseDate, err)
			}
			movie := &entity.Movie{
				ID:                uuid.New(),
				Title:             m.title,
				PosterURL:         m.posterURL,
				Language:          m.language,
				Genre:             m.genre,
				DurationInMinutes: m.duration,
				Rating:            m.rating,
				Description:       m.description,
				ReleaseDate:       releaseDate,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if err := repo.Movie.Create(ctx, movie); err != nil {
				return fmt.Errorf("seed: create movie %q: %w", m.title, err)
			}
		}
		log.Info("Seeded demo movies", zap.Int("count", len(seedMovies)))
	}

	chains, err := repo.Chain.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list chains: %w", err)
	}
	if len(chains) == 0 {
		for _, name := range seedChains {
			if err := repo.Chain.Add(ctx, name); err != nil {
				return fmt.Errorf("seed: add chain %q: %w", name, err)
			}
		}
		log.Info("Seeded theater chains", zap.Int("count", len(seedChains)))
	}

	// Demo accounts live in the in-memory user store, so they are (re)created
	// on every boot.
	demoUsers := []struct {
		username string
		email    string
		password string
		role     entity.Role
		avatar   string
	}{
		{"testuser", "user@test.com", "password123", entity.RoleUser, "https://picsum.photos/seed/user1/200/200"},
		{"testadmin", "admin@test.com", "password123", entity.RoleAdmin, "https://picsum.photos/seed/admin1/200/200"},
	}

	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", u.email, err)
		}
		user := &entity.User{
			ID:           uuid.New(),
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			AvatarURL:    u.avatar,
			CreatedAt:    time.Now(),
		}
		if err := repo.User.Create(ctx, user); err != nil && !errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("seed: create user %s: %w", u.email, err)
		}
	}
	log.Info("Seeded demo accounts", zap.Int("count", len(demoUsers)))

	return nil
}
