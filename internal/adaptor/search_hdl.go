package adaptor

import (
	"net/http"

	"artliving/internal/dto/request"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

// SearchHandler drives the navbar search box of the calling tab.
type SearchHandler struct {
	log *zap.Logger
}

func NewSearchHandler(log *zap.Logger) *SearchHandler {
	return &SearchHandler{log: log}
}

// Get handles GET /search
func (h *SearchHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}
	utils.ResponseSuccess(w, "OK", t.Search.View())
}

// Type handles PUT /search. Results arrive on a later GET once typing pauses.
func (h *SearchHandler) Type(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	var req request.SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t.Search.Type(req.Query)
	utils.ResponseJSON(w, http.StatusAccepted, true, "OK", t.Search.View(), nil)
}

// Clear handles DELETE /search
func (h *SearchHandler) Clear(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	t.Search.Clear()
	utils.ResponseSuccess(w, "OK", t.Search.View())
}
