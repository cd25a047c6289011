package adaptor

import (
	"net/http"

	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/usecase"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "OK", response.FormView{
		Fields: []string{"email", "password"},
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), t.Session, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "login", response.MsgLoginFailed)
		return
	}

	utils.ResponseSuccess(w, response.Greeting(t.Session.Current()), resp)
}

// ValidateLogin handles POST /login/validate?field=
func (h *AuthHandler) ValidateLogin(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondFieldCheck(w, h.service.ValidateLogin(&req, r.URL.Query().Get("field")))
}

// SignUpForm handles GET /sign-up
func (h *AuthHandler) SignUpForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "OK", response.FormView{
		Fields:  []string{"firstName", "lastName", "email", "phone", "city", "password", "confirmPassword"},
		Options: map[string][]string{"city": request.Cities},
	})
}

// SignUp handles POST /sign-up
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "sign up", response.MsgSignUpFailed)
		return
	}

	utils.ResponseCreated(w, response.MsgSignUpSuccess, resp)
}

// ValidateSignUp handles POST /sign-up/validate?field=
func (h *AuthHandler) ValidateSignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondFieldCheck(w, h.service.ValidateSignUp(&req, r.URL.Query().Get("field")))
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	t, ok := currentTab(w, r)
	if !ok {
		return
	}

	if err := h.service.Logout(r.Context(), t.Session); err != nil {
		handleServiceError(w, r, h.log, err, "logout", response.MsgLoadFailed)
		return
	}

	utils.ResponseSuccess(w, response.MsgLogoutSuccess, response.AuthResponse{Redirect: "/login"})
}
