package response

import (
	"time"

	"cinebook/internal/data/entity"
)

type MovieResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	PosterURL         string    `json:"poster_url"`
	Language          string    `json:"language"`
	Genre             string    `json:"genre"`
	DurationInMinutes int       `json:"duration_in_minutes"`
	Rating            float64   `json:"rating"`
	Description       string    `json:"description,omitempty"`
	ReleaseDate       string    `json:"release_date"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		PosterURL:         movie.PosterURL,
		Language:          string(movie.Language),
		Genre:             movie.Genre,
		DurationInMinutes: movie.DurationInMinutes,
		Rating:            movie.Rating,
		Description:       movie.Description,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		CreatedAt:         movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
