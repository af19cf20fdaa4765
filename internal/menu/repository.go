package menu

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("menu document not found")

// Repository persists whole menu documents by key.
// Service depends ONLY on this interface.
//
// Put replaces the stored document unconditionally. There is no merge and
// no version check: with concurrent writers the last write wins.
type Repository interface {
	// Get returns ErrNotFound when nothing is stored under key.
	Get(ctx context.Context, key string) (*Document, error)

	Put(ctx context.Context, key string, doc *Document) error
}
