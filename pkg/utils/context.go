package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	TabTokenKey contextKey = "tab_token"
)

// GetTabTokenFromContext returns the tab token set by the tab middleware.
func GetTabTokenFromContext(ctx context.Context) (uuid.UUID, bool) {
	tokenVal := ctx.Value(TabTokenKey)
	if tokenVal == nil {
		return uuid.Nil, false
	}

	token, ok := tokenVal.(uuid.UUID)
	return token, ok
}

func SetTabTokenContext(ctx context.Context, token uuid.UUID) context.Context {
	return context.WithValue(ctx, TabTokenKey, token)
}
