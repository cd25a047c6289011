package adaptor

import (
	"errors"
	"net/http"

	"artliving/internal/data/entity"
	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/usecase"
	"artliving/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxImportSize bounds the uploaded workbook.
const maxImportSize = 10 << 20

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// GetProduct handles GET /product/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	id := entity.ID(chi.URLParam(r, "id"))
	if id.IsZero() {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	detail, err := h.service.GetProduct(r.Context(), id, t.Session.Current())
	if err != nil {
		handleServiceError(w, r, h.log, err, "get product", response.MsgLoadFailed)
		return
	}

	utils.ResponseSuccess(w, "OK", detail)
}

// ProductForm handles GET /add-product (admin only)
func (h *ProductHandler) ProductForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "OK", response.FormView{
		Fields:  []string{"name", "description", "price", "category", "imageUrl"},
		Options: map[string][]string{"category": entity.Categories},
	})
}

// CreateProduct handles POST /add-product (admin only)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	card, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create product", response.MsgProductFailed)
		return
	}

	utils.ResponseCreated(w, response.MsgProductAdded, struct {
		Product  *response.ProductCard `json:"product"`
		Redirect string                `json:"redirect"`
	}{card, "/home"})
}

// ValidateProduct handles POST /add-product/validate?field=
func (h *ProductHandler) ValidateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondFieldCheck(w, h.service.ValidateProduct(&req, r.URL.Query().Get("field")))
}

// ImportProducts handles POST /add-product/import (admin only), a multipart
// upload with the workbook in the "file" field.
func (h *ProductHandler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	result, err := h.service.ImportProducts(r.Context(), file)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptySheet) {
			utils.ResponseBadRequest(w, response.MsgImportFailed, nil)
			return
		}
		handleServiceError(w, r, h.log, err, "import products", response.MsgImportFailed)
		return
	}

	utils.ResponseSuccess(w, response.MsgImportDone, result)
}

// DeleteProduct handles DELETE /product/{id} (admin only)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := entity.ID(chi.URLParam(r, "id"))
	if id.IsZero() {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, r, h.log, err, "delete product", response.MsgProductDelFailed)
		return
	}

	utils.ResponseSuccess(w, response.MsgProductDeleted, nil)
}
