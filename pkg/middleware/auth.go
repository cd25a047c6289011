package middleware

import (
	"net/http"

	"artliving/internal/tab"
	"artliving/internal/view"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

// TabHeader carries the token issued by POST /api/tabs.
const TabHeader = "X-Tab-Token"

// TabSession resolves the calling tab from its token header. An unknown but
// well-formed token reopens the tab from its persisted session.
func TabSession(registry *tab.Registry, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(TabHeader)
			if header == "" {
				utils.ResponseUnauthorized(w, "Missing tab token")
				return
			}

			token, err := utils.ParseTabToken(header)
			if err != nil {
				utils.ResponseBadRequest(w, "Invalid tab token", nil)
				return
			}

			t, err := registry.Resolve(r.Context(), token)
			if err != nil {
				logger.Error("Failed to resolve tab",
					zap.String("tab", token.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetTabTokenContext(r.Context(), token)
			ctx = tab.WithContext(ctx, t)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser answers with the "please log in" placeholder when the tab
// has no session user.
func RequireUser(logger *zap.Logger) func(http.Handler) http.Handler {
	return gate(false, logger)
}

// RequireAdmin also answers non-admins with the "no permission" placeholder.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return gate(true, logger)
}

func gate(adminOnly bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t, ok := tab.FromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, view.LoginRequiredMessage)
				return
			}

			switch access := view.Gate(t.Session.Current(), adminOnly); access {
			case view.AccessLoginRequired:
				utils.ResponseUnauthorized(w, access.Message())
				return
			case view.AccessForbidden:
				logger.Warn("Admin page denied",
					zap.String("tab", t.Token.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, access.Message())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
