package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// SessionStore issues and checks admin session tokens.
// Handlers and middleware depend ONLY on this interface.
type SessionStore interface {
	Issue(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) error
	Revoke(ctx context.Context, token string) error
}
