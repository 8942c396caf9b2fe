package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	AvatarURL    string    `db:"avatar_url"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session is an authenticated user session identified by a bearer token.
type Session struct {
	Token     uuid.UUID `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences are the remembered per-user UI choices: theme, language and
// last-chosen state/city.
type Preferences struct {
	Theme    Theme  `json:"theme"`
	Language string `json:"language"`
	State    string `json:"state"`
	City     string `json:"city"`
}

// DefaultPreferences mirrors the defaults the reference client starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    ThemeLight,
		Language: "English",
		State:    "Telangana",
		City:     "Hyderabad",
	}
}
