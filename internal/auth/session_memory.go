package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemorySessionStore keeps opaque tokens in process memory. A restart
// invalidates every session. A zero ttl means tokens never expire.
type MemorySessionStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *MemorySessionStore) Issue(ctx context.Context) (string, error) {
	token := uuid.New().String()

	var expires time.Time
	if s.ttl > 0 {
		expires = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.tokens[token] = expires
	s.mu.Unlock()

	return token, nil
}

func (s *MemorySessionStore) Validate(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expires, ok := s.tokens[token]
	if !ok {
		return ErrInvalidToken
	}
	if !expires.IsZero() && !s.now().Before(expires) {
		delete(s.tokens, token)
		return ErrInvalidToken
	}
	return nil
}

func (s *MemorySessionStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}
