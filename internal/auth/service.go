package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNoSecret           = errors.New("admin password not configured")
)

type Service struct {
	hash     []byte
	sessions SessionStore
}

// NewService guards the admin screen with a single shared secret.
// A pre-computed bcrypt hash wins over the plain password.
func NewService(
	password string,
	passwordHash string,
	sessions SessionStore,
) (*Service, error) {
	var hash []byte

	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, err
		}
		hash = []byte(passwordHash)

	case password != "":
		h, err := bcrypt.GenerateFromPassword(
			[]byte(password),
			bcrypt.DefaultCost,
		)
		if err != nil {
			return nil, err
		}
		hash = h

	default:
		return nil, ErrNoSecret
	}

	return &Service{hash: hash, sessions: sessions}, nil
}

// LOGIN
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	err := bcrypt.CompareHashAndPassword(s.hash, []byte(password))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return s.sessions.Issue(ctx)
}

// LOGOUT
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func (s *Service) Sessions() SessionStore {
	return s.sessions
}
