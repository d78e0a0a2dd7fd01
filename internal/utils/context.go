// Package utils provides general-purpose helpers shared across the
// application: typed context keys, JWT token generation and validation, and
// HTTP response writing.
package utils

import "context"

type ctxKey string

// UserIDCtxKey is the context key under which the auth middleware stores the
// authenticated user's ID.
const UserIDCtxKey ctxKey = "userID"

// UserIDFromContext returns the authenticated user ID stored in ctx by the
// auth middleware, or "" if the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDCtxKey).(string)
	return userID
}
