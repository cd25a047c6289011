package wire

import (
	"artliving/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Post("/login/validate", authHandler.ValidateLogin)

	r.Get("/sign-up", authHandler.SignUpForm)
	r.Post("/sign-up", authHandler.SignUp)
	r.Post("/sign-up/validate", authHandler.ValidateSignUp)

	r.Post("/logout", authHandler.Logout)
}
