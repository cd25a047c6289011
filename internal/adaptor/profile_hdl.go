package adaptor

import (
	"net/http"

	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/usecase"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(t.Session)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get profile", response.MsgLoadFailed)
		return
	}

	utils.ResponseSuccess(w, "OK", profile)
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	var req request.ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), t.Session, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "update profile", response.MsgProfileFailed)
		return
	}

	utils.ResponseSuccess(w, response.MsgProfileUpdated, profile)
}

// ValidateProfile handles POST /profile/validate?field=
func (h *ProfileHandler) ValidateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondFieldCheck(w, h.service.ValidateProfile(&req, r.URL.Query().Get("field")))
}
