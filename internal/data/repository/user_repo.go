package repository

import (
	"context"
	"sync"
	"time"

	"cinebook/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValid(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, token uuid.UUID) error
}

// PrefRepository is the key-value persistence capability for the remembered
// per-user choices (theme, language, state, city).
type PrefRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (entity.Preferences, error)
	Put(ctx context.Context, userID uuid.UUID, prefs entity.Preferences) error
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
	log   *zap.Logger
}

func NewMemoryUserRepository(log *zap.Logger) UserRepository {
	return &memoryUserRepository{
		users: make(map[uuid.UUID]*entity.User),
		log:   log.With(zap.String("repository", "user")),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicate
		}
	}

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	found := *user
	return &found, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.Session
	log      *zap.Logger
}

func NewMemorySessionRepository(log *zap.Logger) SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]*entity.Session),
		log:      log.With(zap.String("repository", "session")),
	}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.sessions[session.Token] = &stored
	return nil
}

func (r *memorySessionRepository) FindValid(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, nil
	}

	found := *session
	return &found, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, token uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[token]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, token)
	return nil
}

type memoryPrefRepository struct {
	mu    sync.RWMutex
	prefs map[uuid.UUID]entity.Preferences
	log   *zap.Logger
}

func NewMemoryPrefRepository(log *zap.Logger) PrefRepository {
	return &memoryPrefRepository{
		prefs: make(map[uuid.UUID]entity.Preferences),
		log:   log.With(zap.String("repository", "pref")),
	}
}

func (r *memoryPrefRepository) Get(ctx context.Context, userID uuid.UUID) (entity.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefs, ok := r.prefs[userID]
	if !ok {
		return entity.DefaultPreferences(), nil
	}
	return prefs, nil
}

func (r *memoryPrefRepository) Put(ctx context.Context, userID uuid.UUID, prefs entity.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[userID] = prefs
	return nil
}
