// internal/wire/wire.go
package wire

import (
	"net/http"

	"artliving/internal/adaptor"
	"artliving/internal/data/repository"
	"artliving/internal/tab"
	"artliving/internal/usecase"
	"artliving/pkg/middleware"
	"artliving/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the router and the tab registry it serves.
type App struct {
	Router *chi.Mux
	Tabs   *tab.Registry
}

// Wiring builds services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	registry := tab.NewRegistry(repo, config, logger)
	service := usecase.NewService(repo, registry, config, logger)
	handler := adaptor.NewHandler(service, registry, logger)

	router := setupRouter(handler, registry, logger)

	return &App{
		Router: router,
		Tabs:   registry,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	registry *tab.Registry,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Tab lifecycle
	r.Post("/api/tabs", handler.Tab.Open)
	r.Delete("/api/tabs", handler.Tab.Close)

	// Every page route runs inside a tab.
	r.Group(func(r chi.Router) {
		r.Use(middleware.TabSession(registry, logger))

		wireAuth(r, handler.Auth)
		wireHome(r, handler.Home, handler.Search)
		wireProduct(r, handler.Product, logger)
		wireReview(r, handler.Review)
		wireProfile(r, handler.Profile, logger)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusFound)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	return r
}
