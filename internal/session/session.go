// Package session holds a tab's logged-in user as an explicit, observable
// context: loaded once from storage when the tab opens, written through on
// login, profile update and logout, and pushed to every subscriber.
package session

import (
	"context"
	"fmt"
	"sync"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listener receives the new current user, or nil after logout.
type Listener func(user *entity.User)

type Context struct {
	tab  uuid.UUID
	repo repository.SessionRepository
	log  *zap.Logger

	mu        sync.RWMutex
	user      *entity.User
	listeners map[int]Listener
	nextID    int
}

// Open initialises the context from the tab's persisted record.
func Open(ctx context.Context, tab uuid.UUID, repo repository.SessionRepository, log *zap.Logger) (*Context, error) {
	user, err := repo.Load(ctx, tab)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	return &Context{
		tab:       tab,
		repo:      repo,
		log:       log.With(zap.String("session", tab.String())),
		user:      user,
		listeners: make(map[int]Listener),
	}, nil
}

// Current returns a copy of the logged-in user, nil when logged out.
func (c *Context) Current() *entity.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.user)
}

func (c *Context) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

// Login persists user as the current session user and notifies subscribers.
func (c *Context) Login(ctx context.Context, user *entity.User) error {
	if err := c.set(ctx, user); err != nil {
		return err
	}
	c.log.Info("Session started", zap.String("user_id", user.ID.String()))
	return nil
}

// Update replaces the stored user after a profile edit.
func (c *Context) Update(ctx context.Context, user *entity.User) error {
	if !c.IsAuthenticated() {
		return fmt.Errorf("update session: no user logged in")
	}
	return c.set(ctx, user)
}

// Logout removes the stored user. Logging out twice is harmless.
func (c *Context) Logout(ctx context.Context) error {
	if err := c.repo.Clear(ctx, c.tab); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()

	c.log.Info("Session ended")
	c.notify(nil)
	return nil
}

// Subscribe registers l and returns a function that removes it.
func (c *Context) Subscribe(l Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Context) set(ctx context.Context, user *entity.User) error {
	if user == nil {
		return fmt.Errorf("set session: nil user")
	}

	// Storage first: a failed write leaves the session untouched.
	if err := c.repo.Save(ctx, c.tab, user); err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	c.mu.Lock()
	c.user = clone(user)
	c.mu.Unlock()

	c.notify(clone(user))
	return nil
}

func (c *Context) notify(user *entity.User) {
	c.mu.RLock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.RUnlock()

	for _, l := range listeners {
		l(clone(user))
	}
}

func clone(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	cp := *user
	return &cp
}
