package wire

import (
	"artliving/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHome(r chi.Router, homeHandler *adaptor.HomeHandler, searchHandler *adaptor.SearchHandler) {
	r.Get("/home", homeHandler.Home)
	r.Post("/home/scroll", homeHandler.Scroll)

	// Navbar search, present on every page
	r.Route("/search", func(r chi.Router) {
		r.Get("/", searchHandler.Get)
		r.Put("/", searchHandler.Type)
		r.Delete("/", searchHandler.Clear)
	})
}
