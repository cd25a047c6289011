package wire

import (
	"artliving/internal/adaptor"
	"artliving/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(r chi.Router, profileHandler *adaptor.ProfileHandler, log *zap.Logger) {
	r.With(middleware.RequireUser(log)).Route("/profile", func(r chi.Router) {
		r.Get("/", profileHandler.GetProfile)
		r.Put("/", profileHandler.UpdateProfile)
		r.Post("/validate", profileHandler.ValidateProfile)
	})
}
