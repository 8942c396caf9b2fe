package repository

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgMovieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPgMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &pgMovieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_pg")),
	}
}

func (r *pgMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, poster_url, language, genre,
		                    duration_in_minutes, rating, description,
		                    release_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.PosterURL,
		movie.Language,
		movie.Genre,
		movie.DurationInMinutes,
		movie.Rating,
		movie.Description,
		movie.ReleaseDate,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	return nil
}

func (r *pgMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, poster_url, language, genre, duration_in_minutes,
		       rating, description, release_date, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.PosterURL,
		&movie.Language,
		&movie.Genre,
		&movie.DurationInMinutes,
		&movie.Rating,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie: %w", err)
	}

	return &movie, nil
}

func (r *pgMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, poster_url, language, genre, duration_in_minutes,
		       rating, description, release_date, created_at, updated_at
		FROM movies
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		if err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.PosterURL,
			&movie.Language,
			&movie.Genre,
			&movie.DurationInMinutes,
			&movie.Rating,
			&movie.Description,
			&movie.ReleaseDate,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}

func (r *pgMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, poster_url = $3, language = $4, genre = $5,
		    duration_in_minutes = $6, rating = $7, description = $8,
		    release_date = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.PosterURL,
		movie.Language,
		movie.Genre,
		movie.DurationInMinutes,
		movie.Rating,
		movie.Description,
		movie.ReleaseDate,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *pgMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
