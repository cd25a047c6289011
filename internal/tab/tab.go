// Package tab tracks open browser tabs. Each tab owns its session context
// and the feed and search controllers of the pages it shows.
package tab

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/session"
	"artliving/internal/usecase"
	"artliving/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrTabNotFound = errors.New("tab not found")

type Tab struct {
	Token   uuid.UUID
	Session *session.Context
	Feed    usecase.FeedController
	Search  usecase.SearchController

	mu          sync.Mutex
	lastSeen    time.Time
	unsubscribe func()
}

func (t *Tab) touch(now time.Time) {
	t.mu.Lock()
	t.lastSeen = now
	t.mu.Unlock()
}

func (t *Tab) idleSince(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return now.Sub(t.lastSeen)
}

func (t *Tab) close() {
	t.unsubscribe()
	t.Feed.Close()
	t.Search.Close()
}

type Registry struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time

	mu   sync.RWMutex
	tabs map[uuid.UUID]*Tab
}

func NewRegistry(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Registry {
	return &Registry{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("component", "tabs")),
		now:    time.Now,
		tabs:   make(map[uuid.UUID]*Tab),
	}
}

// Open starts a tab under a fresh token.
func (r *Registry) Open(ctx context.Context) (*Tab, error) {
	return r.Resolve(ctx, utils.GenerateTabToken())
}

// Resolve returns the tab for token, reopening it from storage when this
// process has not seen it yet (e.g. after a restart). The tab's persisted
// session user comes back with it.
func (r *Registry) Resolve(ctx context.Context, token uuid.UUID) (*Tab, error) {
	r.mu.RLock()
	t, ok := r.tabs[token]
	r.mu.RUnlock()
	if ok {
		t.touch(r.now())
		return t, nil
	}

	sess, err := session.Open(ctx, token, r.repo.Session, r.log)
	if err != nil {
		return nil, fmt.Errorf("open tab: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another request for the same token may have won the race.
	if existing, ok := r.tabs[token]; ok {
		existing.touch(r.now())
		return existing, nil
	}

	t = &Tab{
		Token:    token,
		Session:  sess,
		Feed:     usecase.NewFeedController(r.repo.Product, r.config.Feed, r.log),
		Search:   usecase.NewSearchController(r.repo.Product, r.config.Search.Debounce, r.log),
		lastSeen: r.now(),
	}
	// Logging in or out navigates away, which closes the search dropdown.
	t.unsubscribe = sess.Subscribe(func(*entity.User) {
		t.Search.Clear()
	})
	r.tabs[token] = t

	r.log.Info("Tab opened", zap.String("tab", token.String()))
	return t, nil
}

// Get returns an already open tab.
func (r *Registry) Get(token uuid.UUID) (*Tab, error) {
	r.mu.RLock()
	t, ok := r.tabs[token]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrTabNotFound
	}
	t.touch(r.now())
	return t, nil
}

// Close drops the tab and cancels its pending work. The persisted session
// record stays, as a reload of the tab would keep it.
func (r *Registry) Close(token uuid.UUID) error {
	r.mu.Lock()
	t, ok := r.tabs[token]
	delete(r.tabs, token)
	r.mu.Unlock()

	if !ok {
		return ErrTabNotFound
	}

	t.close()
	r.log.Info("Tab closed", zap.String("tab", token.String()))
	return nil
}

// Sweep closes tabs idle for longer than maxIdle and returns how many.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	now := r.now()

	r.mu.Lock()
	var idle []*Tab
	for token, t := range r.tabs {
		if t.idleSince(now) > maxIdle {
			idle = append(idle, t)
			delete(r.tabs, token)
		}
	}
	r.mu.Unlock()

	for _, t := range idle {
		t.close()
	}
	if len(idle) > 0 {
		r.log.Info("Idle tabs swept", zap.Int("count", len(idle)))
	}
	return len(idle)
}

// Run sweeps idle tabs every interval until ctx ends.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(r.config.Tab.IdleTimeout)
		}
	}
}

// InvalidateProducts marks every tab's feed stale after a catalogue change.
func (r *Registry) InvalidateProducts() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tabs {
		t.Feed.Invalidate()
	}
	r.log.Debug("Feeds invalidated", zap.Int("tabs", len(r.tabs)))
}

// CloseAll closes every tab; used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	tabs := r.tabs
	r.tabs = make(map[uuid.UUID]*Tab)
	r.mu.Unlock()

	for _, t := range tabs {
		t.close()
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tabs)
}
