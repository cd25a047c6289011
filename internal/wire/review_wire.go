package wire

import (
	"artliving/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Review permissions depend on the review's author, so the service checks
// them rather than a route middleware.
func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/product/{id}/reviews", func(r chi.Router) {
		r.Post("/", reviewHandler.AddReview)
		r.Post("/validate", reviewHandler.ValidateReview)
		r.Delete("/{reviewId}", reviewHandler.DeleteReview)
	})
}
