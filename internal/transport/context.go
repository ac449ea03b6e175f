package transport

import (
	"context"
	"net/http"
)

type ctxKey string

const requestContextKey ctxKey = "requestContext"

// RequestContext carries the authenticated identity (nil for anonymous
// requests) and the raw request headers through resolver execution.
type RequestContext struct {
	UserID  *int
	Headers http.Header
}

func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}

func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey).(*RequestContext)
	return rc
}

// UserIDFromContext unwraps the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int, bool) {
	rc := FromContext(ctx)
	if rc == nil || rc.UserID == nil {
		return 0, false
	}
	return *rc.UserID, true
}
