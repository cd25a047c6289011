package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"artliving/internal/data/entity"
	"artliving/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CurrentUserKey is the fixed key the session user is stored under,
// inside each tab's namespace.
const CurrentUserKey = "user"

// SessionRepository persists the tab's current user record.
type SessionRepository interface {
	// Load returns nil when the tab has no stored user.
	Load(ctx context.Context, tab uuid.UUID) (*entity.User, error)
	Save(ctx context.Context, tab uuid.UUID, user *entity.User) error
	Clear(ctx context.Context, tab uuid.UUID) error
}

type sessionRepository struct {
	store storage.KeyValueStore
	log   *zap.Logger
}

func NewSessionRepository(store storage.KeyValueStore, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		store: store,
		log:   log.With(zap.String("repository", "session")),
	}
}

func sessionKey(tab uuid.UUID) string {
	return fmt.Sprintf("tab:%s:%s", tab.String(), CurrentUserKey)
}

func (r *sessionRepository) Load(ctx context.Context, tab uuid.UUID) (*entity.User, error) {
	raw, found, err := r.store.Get(ctx, sessionKey(tab))
	if err != nil {
		return nil, fmt.Errorf("load session for tab %s: %w", tab, err)
	}
	if !found {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// A corrupt record behaves like no session.
		r.log.Warn("Discarding unreadable session record",
			zap.Error(err),
			zap.String("tab", tab.String()),
		)
		return nil, nil
	}

	return &user, nil
}

func (r *sessionRepository) Save(ctx context.Context, tab uuid.UUID, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	if err := r.store.Set(ctx, sessionKey(tab), raw); err != nil {
		return fmt.Errorf("save session for tab %s: %w", tab, err)
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context, tab uuid.UUID) error {
	if err := r.store.Delete(ctx, sessionKey(tab)); err != nil {
		return fmt.Errorf("clear session for tab %s: %w", tab, err)
	}
	return nil
}
