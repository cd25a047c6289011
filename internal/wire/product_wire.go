package wire

import (
	"artliving/internal/adaptor"
	"artliving/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/product/{id}", productHandler.GetProduct)

	// ==================== ADMIN ROUTES ====================
	r.With(middleware.RequireAdmin(log)).Route("/add-product", func(r chi.Router) {
		r.Get("/", productHandler.ProductForm)
		r.Post("/", productHandler.CreateProduct)
		r.Post("/validate", productHandler.ValidateProduct)
		r.Post("/import", productHandler.ImportProducts)
	})
	r.With(middleware.RequireAdmin(log)).Delete("/product/{id}", productHandler.DeleteProduct)
}
