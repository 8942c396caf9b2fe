package entity

import (
	"time"

	"github.com/google/uuid"
)

type Language string

const (
	LanguageTelugu    Language = "Telugu"
	LanguageTamil     Language = "Tamil"
	LanguageHindi     Language = "Hindi"
	LanguageMalayalam Language = "Malayalam"
	LanguageKannada   Language = "Kannada"
	LanguageEnglish   Language = "English"
)

// Languages lists every valid movie language, in display order.
var Languages = []Language{
	LanguageTelugu,
	LanguageTamil,
	LanguageHindi,
	LanguageMalayalam,
	LanguageKannada,
	LanguageEnglish,
}

func ValidLanguage(s string) bool {
	for _, l := range Languages {
		if string(l) == s {
			return true
		}
	}
	return false
}

type Movie struct {
	ID                uuid.UUID `db:"id"`
	Title             string    `db:"title"`
	PosterURL         string    `db:"poster_url"`
	Language          Language  `db:"language"`
	Genre             string    `db:"genre"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	Rating            float64   `db:"rating"`
	Description       string    `db:"description"`
	ReleaseDate       time.Time `db:"release_date"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
