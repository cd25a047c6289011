package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/dto/response"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

// FeedState is a snapshot of the home page listing.
type FeedState struct {
	Items         []entity.Product
	Page          int
	HasMore       bool
	IsLoading     bool
	IsLoadingMore bool
	Category      string
	Stale         bool
	LastBatch     int
	Failed        bool
}

type FeedController interface {
	// SelectCategory resets the feed and loads page 1 of category.
	SelectCategory(ctx context.Context, category string) (FeedState, error)
	// Refresh loads page 1 of the current category if the feed was never
	// loaded or has been invalidated; otherwise it returns the state as is.
	Refresh(ctx context.Context) (FeedState, error)
	// Scroll triggers LoadMore when distanceToBottom is within the threshold.
	Scroll(ctx context.Context, distanceToBottom int) (FeedState, error)
	LoadMore(ctx context.Context) (FeedState, error)
	Invalidate()
	State() FeedState
	View() response.FeedView
	Close()
}

type feedController struct {
	products repository.ProductRepository
	config   utils.FeedConfig
	log      *zap.Logger

	mu     sync.Mutex
	state  FeedState
	loaded bool
	closed bool
	gen    uint64
	// genCtx is cancelled whenever the generation changes, aborting every
	// request issued under the previous one.
	genCtx    context.Context
	genCancel context.CancelFunc
	// settled is closed once the running page-1 load settles.
	settled chan struct{}
}

func NewFeedController(products repository.ProductRepository, config utils.FeedConfig, log *zap.Logger) FeedController {
	genCtx, genCancel := context.WithCancel(context.Background())
	return &feedController{
		products: products,
		config:   config,
		log:      log.With(zap.String("service", "feed")),
		state: FeedState{
			Page:     1,
			HasMore:  true,
			Category: entity.CategoryAll,
		},
		genCtx:    genCtx,
		genCancel: genCancel,
	}
}

func (c *feedController) SelectCategory(ctx context.Context, category string) (FeedState, error) {
	if category == "" {
		category = entity.CategoryAll
	}

	c.mu.Lock()
	if c.closed {
		defer c.mu.Unlock()
		return c.snapshot(), nil
	}
	gen, reqCtx, release := c.begin(ctx, category)
	c.mu.Unlock()
	defer release()

	return c.fetchFirst(reqCtx, gen, category)
}

func (c *feedController) Refresh(ctx context.Context) (FeedState, error) {
	c.mu.Lock()
	if c.closed || (c.loaded && !c.state.Stale && !c.state.IsLoading) {
		defer c.mu.Unlock()
		return c.snapshot(), nil
	}

	// A page-1 load is already running: share its result.
	if c.state.IsLoading {
		settled := c.settled
		c.mu.Unlock()

		select {
		case <-settled:
		case <-ctx.Done():
		}
		return c.State(), nil
	}

	category := c.state.Category
	gen, reqCtx, release := c.begin(ctx, category)
	c.mu.Unlock()
	defer release()

	return c.fetchFirst(reqCtx, gen, category)
}

func (c *feedController) Scroll(ctx context.Context, distanceToBottom int) (FeedState, error) {
	if distanceToBottom > c.config.ScrollThreshold {
		return c.State(), nil
	}
	return c.LoadMore(ctx)
}

func (c *feedController) LoadMore(ctx context.Context) (FeedState, error) {
	c.mu.Lock()
	if c.closed || !c.loaded || !c.state.HasMore || c.state.IsLoading || c.state.IsLoadingMore {
		defer c.mu.Unlock()
		return c.snapshot(), nil
	}
	gen := c.gen
	page := c.state.Page + 1
	category := c.state.Category
	c.state.IsLoadingMore = true
	reqCtx, release := c.requestContext(ctx)
	c.mu.Unlock()
	defer release()

	start := time.Now()
	products, err := c.products.FindPage(reqCtx, page, category)
	if err == nil {
		err = waitFloor(reqCtx, start, c.config.LoadMoreFloor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return c.snapshot(), nil
	}

	c.state.IsLoadingMore = false
	if err != nil {
		c.log.Error("Failed to load more products",
			zap.Error(err),
			zap.Int("page", page),
			zap.String("category", category),
		)
		return c.snapshot(), err
	}

	c.state.LastBatch = len(products)
	if len(products) == 0 {
		c.state.HasMore = false
		return c.snapshot(), nil
	}

	c.state.Items = append(c.state.Items, products...)
	c.state.Page = page
	c.state.HasMore = len(products) == repository.PageSize

	return c.snapshot(), nil
}

func (c *feedController) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A page 1 still in flight may predate the change.
	if c.loaded || c.state.IsLoading {
		c.state.Stale = true
	}
}

func (c *feedController) State() FeedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *feedController) View() response.FeedView {
	c.mu.Lock()
	state := c.snapshot()
	loaded := c.loaded
	c.mu.Unlock()

	view := response.FeedView{
		Category:      state.Category,
		Categories:    append([]string{entity.CategoryAll}, entity.Categories...),
		Items:         response.ProductsToCards(state.Items),
		Page:          state.Page,
		HasMore:       state.HasMore,
		IsLoading:     state.IsLoading,
		IsLoadingMore: state.IsLoadingMore,
	}

	loading := state.IsLoading || state.IsLoadingMore
	switch {
	case state.Failed:
		view.Notice = response.MsgLoadFailed
	case loading || !loaded:
	case len(state.Items) == 0:
		view.Empty = true
		view.Notice = response.MsgNoProducts
	case !state.HasMore:
		view.EndOfFeed = true
		view.Notice = response.MsgEndOfFeed
	}

	return view
}

// Close aborts in-flight requests. Later calls return the last state.
func (c *feedController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.genCancel()
	c.settle()
}

// begin resets the feed to a loading page 1 of category under a new
// generation. Must be called with mu held.
func (c *feedController) begin(ctx context.Context, category string) (uint64, context.Context, func()) {
	gen := c.nextGeneration()
	c.state = FeedState{
		Page:      1,
		HasMore:   true,
		IsLoading: true,
		Category:  category,
	}
	c.settled = make(chan struct{})
	reqCtx, release := c.requestContext(ctx)
	return gen, reqCtx, release
}

// fetchFirst loads page 1 for generation gen and publishes it unless a
// newer generation has started.
func (c *feedController) fetchFirst(ctx context.Context, gen uint64, category string) (FeedState, error) {
	start := time.Now()
	products, err := c.products.FindPage(ctx, 1, category)
	if err == nil {
		err = waitFloor(ctx, start, c.config.InitialFloor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Debug("Discarding superseded page", zap.String("category", category))
		return c.snapshot(), nil
	}

	c.state.IsLoading = false
	c.settle()
	if err != nil {
		c.state.Failed = true
		c.log.Error("Failed to load feed",
			zap.Error(err),
			zap.String("category", category),
		)
		return c.snapshot(), err
	}

	c.loaded = true
	c.state.Items = products
	c.state.LastBatch = len(products)
	c.state.HasMore = len(products) == repository.PageSize

	return c.snapshot(), nil
}

// nextGeneration must be called with mu held.
func (c *feedController) nextGeneration() uint64 {
	c.gen++
	c.genCancel()
	c.genCtx, c.genCancel = context.WithCancel(context.Background())
	c.settle()
	return c.gen
}

// settle wakes callers waiting on the current page-1 load. Must be called
// with mu held.
func (c *feedController) settle() {
	if c.settled != nil {
		close(c.settled)
		c.settled = nil
	}
}

// requestContext derives a request context that ends with either the
// caller's context or the current generation. Must be called with mu held.
func (c *feedController) requestContext(ctx context.Context) (context.Context, func()) {
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.genCtx, cancel)
	return reqCtx, func() {
		stop()
		cancel()
	}
}

// snapshot must be called with mu held.
func (c *feedController) snapshot() FeedState {
	state := c.state
	state.Items = append([]entity.Product(nil), c.state.Items...)
	return state
}

// waitFloor blocks until at least floor has passed since start so that fast
// responses do not flicker the loading indicator.
func waitFloor(ctx context.Context, start time.Time, floor time.Duration) error {
	remaining := floor - time.Since(start)
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsSuperseded reports whether err only means a newer request replaced this one.
func IsSuperseded(err error) bool {
	return errors.Is(err, context.Canceled)
}
