package tab

import "context"

type contextKey struct{}

func WithContext(ctx context.Context, t *Tab) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the tab resolved by the tab middleware.
func FromContext(ctx context.Context) (*Tab, bool) {
	t, ok := ctx.Value(contextKey{}).(*Tab)
	return t, ok && t != nil
}
