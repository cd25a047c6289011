package adaptor

import (
	"net/http"

	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/usecase"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

// HomeHandler serves the product feed of the calling tab.
type HomeHandler struct {
	log *zap.Logger
}

func NewHomeHandler(log *zap.Logger) *HomeHandler {
	return &HomeHandler{log: log}
}

// Home handles GET /home. A category parameter is a click on a category
// button and always reloads; without it the page shows the current feed,
// loading it first when needed.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	var err error
	if r.URL.Query().Has("category") {
		_, err = t.Feed.SelectCategory(r.Context(), r.URL.Query().Get("category"))
	} else {
		_, err = t.Feed.Refresh(r.Context())
	}

	h.respond(w, t.Feed, err, "load feed")
}

// Scroll handles POST /home/scroll
func (h *HomeHandler) Scroll(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	var req request.ScrollRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := t.Feed.Scroll(r.Context(), req.DistanceToBottom)
	h.respond(w, t.Feed, err, "load more")
}

func (h *HomeHandler) respond(w http.ResponseWriter, feed usecase.FeedController, err error, operation string) {
	view := feed.View()

	if err != nil && !usecase.IsSuperseded(err) {
		h.log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadGateway, false, response.MsgLoadFailed, view, nil)
		return
	}

	utils.ResponseSuccess(w, "OK", view)
}
