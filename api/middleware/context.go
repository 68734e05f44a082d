package middleware

import "context"

type contextKey string

const (
	ctxRole      contextKey = "actorRole"
	ctxUsername  contextKey = "actorUsername"
	ctxSessionID contextKey = "sessionID"
	ctxRequestID contextKey = "requestID"
)

// RoleFromContext returns the authenticated actor role, if any.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(ctxRole).(string)
	return role, ok
}

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(ctxUsername).(string)
	return username, ok
}

// SessionIDFromContext returns the shopper session id for this request.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxSessionID).(string)
	return id, ok
}

// RequestIDFromContext returns the request correlation id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxRequestID).(string)
	return id, ok
}
