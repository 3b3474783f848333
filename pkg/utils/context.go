package utils

import (
	"context"
)

type contextKey string

const (
	UserEmailKey contextKey = "user_email"
)

// SetUserContext stores the authenticated user's email for downstream handlers and logs
func SetUserContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, email)
}

func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(UserEmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
