package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/dto/response"

	"go.uber.org/zap"
)

type SearchState struct {
	Query   string
	Results []entity.Product
	Visible bool
}

type SearchController interface {
	// Type records the new query and schedules a lookup once typing pauses.
	Type(query string) SearchState
	// Clear empties the box and drops any pending or in-flight lookup.
	Clear()
	State() SearchState
	View() response.SearchView
	Close()
}

type searchController struct {
	products repository.ProductRepository
	debounce time.Duration
	log      *zap.Logger

	// ctx outlives the request that typed the query; lookups fire later.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	state    SearchState
	gen      uint64
	timer    *time.Timer
	inFlight context.CancelFunc
	closed   bool
}

func NewSearchController(products repository.ProductRepository, debounce time.Duration, log *zap.Logger) SearchController {
	ctx, cancel := context.WithCancel(context.Background())
	return &searchController{
		products: products,
		debounce: debounce,
		log:      log.With(zap.String("service", "search")),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (c *searchController) Type(query string) SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.snapshot()
	}

	c.state.Query = query
	c.supersede()

	term := strings.TrimSpace(query)
	if term == "" {
		c.state.Results = nil
		c.state.Visible = false
		return c.snapshot()
	}

	gen := c.gen
	c.timer = time.AfterFunc(c.debounce, func() {
		c.lookup(gen, term)
	})

	return c.snapshot()
}

func (c *searchController) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersede()
	c.state = SearchState{}
}

func (c *searchController) State() SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *searchController) View() response.SearchView {
	state := c.State()
	return response.SearchView{
		Query:   state.Query,
		Results: response.ProductsToCards(state.Results),
		Visible: state.Visible,
	}
}

func (c *searchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.supersede()
	c.cancel()
}

func (c *searchController) lookup(gen uint64, term string) {
	c.mu.Lock()
	if gen != c.gen || c.closed {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.inFlight = cancel
	c.mu.Unlock()
	defer cancel()

	results, err := c.products.Search(ctx, term, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	c.inFlight = nil

	if err != nil {
		c.log.Error("Search failed", zap.Error(err), zap.String("query", term))
		// Earlier results belong to an older query.
		c.state.Results = nil
		c.state.Visible = false
		return
	}

	c.state.Results = results
	c.state.Visible = true
}

// supersede bumps the generation and stops pending work. Must be called
// with mu held.
func (c *searchController) supersede() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.inFlight != nil {
		c.inFlight()
		c.inFlight = nil
	}
}

// snapshot must be called with mu held.
func (c *searchController) snapshot() SearchState {
	state := c.state
	state.Results = append([]entity.Product(nil), c.state.Results...)
	return state
}
