package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"artliving/internal/dto/response"
	"artliving/internal/tab"
	"artliving/internal/usecase"
	"artliving/internal/view"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Tab     *TabHandler
	Auth    *AuthHandler
	Home    *HomeHandler
	Search  *SearchHandler
	Product *ProductHandler
	Review  *ReviewHandler
	Profile *ProfileHandler
}

func NewHandler(service *usecase.Service, registry *tab.Registry, log *zap.Logger) *Handler {
	return &Handler{
		Tab:     NewTabHandler(registry, log),
		Auth:    NewAuthHandler(service.Auth, log),
		Home:    NewHomeHandler(log),
		Search:  NewSearchHandler(log),
		Product: NewProductHandler(service.Product, log),
		Review:  NewReviewHandler(service.Review, log),
		Profile: NewProfileHandler(service.Profile, log),
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// currentTab is only nil when a route was wired without the tab middleware.
func currentTab(w http.ResponseWriter, r *http.Request) (*tab.Tab, bool) {
	t, ok := tab.FromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing tab token")
		return nil, false
	}
	return t, true
}

// respondFieldCheck answers a blur validation: 200 either way, with the
// field's message in errors when it fails.
func respondFieldCheck(w http.ResponseWriter, errs map[string]string) {
	if len(errs) == 0 {
		utils.ResponseSuccess(w, "OK", nil)
		return
	}
	utils.ResponseJSON(w, http.StatusOK, false, response.MsgValidationFailed, nil, errs)
}

// handleServiceError maps service errors onto the envelope. Transport and
// backend failures all collapse to one localized message.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation, failure string) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
	}
	if token, ok := utils.GetTabTokenFromContext(r.Context()); ok {
		fields = append(fields, zap.String("tab", token.String()))
	}

	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Debug(operation+" validation failed", fields...)
		switch {
		case errors.Is(err, usecase.ErrEmailExists):
			utils.ResponseConflict(w, response.MsgEmailExists, validationErr.Fields)
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.ResponseJSON(w, http.StatusUnauthorized, false, response.MsgLoginFailed, nil, validationErr.Fields)
		default:
			utils.ResponseBadRequest(w, response.MsgValidationFailed, validationErr.Fields)
		}

	case errors.Is(err, usecase.ErrLoginRequired):
		utils.ResponseUnauthorized(w, view.LoginRequiredMessage)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" forbidden", fields...)
		utils.ResponseForbidden(w, view.NoPermissionMessage)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", fields...)
		utils.ResponseNotFound(w, response.MsgLoadFailed)

	default:
		log.Error("Failed to "+operation, fields...)
		utils.ResponseBadGateway(w, failure)
	}
}
