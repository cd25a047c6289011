package adaptor

import (
	"errors"
	"net/http"

	"artliving/internal/dto/response"
	"artliving/internal/tab"
	"artliving/pkg/middleware"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

type TabHandler struct {
	registry *tab.Registry
	log      *zap.Logger
}

func NewTabHandler(registry *tab.Registry, log *zap.Logger) *TabHandler {
	return &TabHandler{
		registry: registry,
		log:      log,
	}
}

type TabResponse struct {
	Token string                 `json:"token"`
	User  *response.UserResponse `json:"user,omitempty"`
}

// Open handles POST /api/tabs
func (h *TabHandler) Open(w http.ResponseWriter, r *http.Request) {
	t, err := h.registry.Open(r.Context())
	if err != nil {
		h.log.Error("Failed to open tab", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseCreated(w, "Tab opened", TabResponse{
		Token: t.Token.String(),
		User:  response.UserToResponse(t.Session.Current()),
	})
}

// Close handles DELETE /api/tabs
func (h *TabHandler) Close(w http.ResponseWriter, r *http.Request) {
	token, err := utils.ParseTabToken(r.Header.Get(middleware.TabHeader))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tab token", nil)
		return
	}

	if err := h.registry.Close(token); err != nil {
		if errors.Is(err, tab.ErrTabNotFound) {
			utils.ResponseNotFound(w, "Tab not found")
			return
		}
		h.log.Error("Failed to close tab", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Tab closed", nil)
}
