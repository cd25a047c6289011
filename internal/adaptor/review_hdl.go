package adaptor

import (
	"net/http"

	"artliving/internal/data/entity"
	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/usecase"
	"artliving/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// AddReview handles POST /product/{id}/reviews
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	productID := entity.ID(chi.URLParam(r, "id"))
	detail, err := h.service.AddReview(r.Context(), productID, t.Session.Current(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "add review", response.MsgReviewFailed)
		return
	}

	utils.ResponseCreated(w, response.MsgReviewAdded, detail)
}

// ValidateReview handles POST /product/{id}/reviews/validate?field=
func (h *ReviewHandler) ValidateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondFieldCheck(w, h.service.ValidateReview(&req, r.URL.Query().Get("field")))
}

// DeleteReview handles DELETE /product/{id}/reviews/{reviewId}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	productID := entity.ID(chi.URLParam(r, "id"))
	reviewID := entity.ID(chi.URLParam(r, "reviewId"))

	detail, err := h.service.DeleteReview(r.Context(), productID, reviewID, t.Session.Current())
	if err != nil {
		handleServiceError(w, r, h.log, err, "delete review", response.MsgReviewDelFailed)
		return
	}

	utils.ResponseSuccess(w, response.MsgReviewDeleted, detail)
}
