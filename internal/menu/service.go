package menu

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrUnknownDay = errors.New("unknown weekday")

// Snapshotter receives a copy of every document written through SetMenu.
type Snapshotter interface {
	Snapshot(ctx context.Context, doc *Document) error
}

type Service struct {
	repo      Repository
	snapshots Snapshotter
	logger    *zap.Logger
	newID     func() string

	// serialises the check-then-seed in GetMenu so one process seeds once
	seedMu sync.Mutex
}

func NewService(repo Repository, snapshots Snapshotter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		logger:    logger,
		newID:     NewItemID,
	}
}

// --------------------------------------------------
// Get Menu (LAZY SEED)
// --------------------------------------------------

// GetMenu returns the stored week. An absent or day-less document is
// seeded from the built-in catalog, written back and returned.
func (s *Service) GetMenu(ctx context.Context) (*Document, error) {
	doc, err := s.repo.Get(ctx, GlobalKey)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if !doc.IsEmpty() {
		return doc, nil
	}

	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	// another request may have seeded while we waited
	doc, err = s.repo.Get(ctx, GlobalKey)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if !doc.IsEmpty() {
		return doc, nil
	}

	seeded := Seed(s.newID)
	if err := s.repo.Put(ctx, GlobalKey, seeded); err != nil {
		return nil, fmt.Errorf("seed menu: %w", err)
	}

	s.logger.Info("menu seeded with default catalog",
		zap.Int("days", len(seeded.Days)),
	)
	return seeded, nil
}

// --------------------------------------------------
// Set Menu (WHOLE REPLACE)
// --------------------------------------------------

// SetMenu replaces the entire document. Concurrent callers race and the
// later write wins; there is no conflict detection.
func (s *Service) SetMenu(ctx context.Context, doc *Document) (*Document, error) {
	if doc == nil || doc.Days == nil {
		return nil, ErrInvalidDocument
	}

	if err := s.repo.Put(ctx, GlobalKey, doc); err != nil {
		return nil, fmt.Errorf("save menu: %w", err)
	}

	if s.snapshots != nil {
		if err := s.snapshots.Snapshot(ctx, doc); err != nil {
			s.logger.Warn("menu snapshot failed", zap.Error(err))
		}
	}

	s.logger.Info("menu replaced", zap.Int("days", len(doc.Days)))
	return doc, nil
}

// --------------------------------------------------
// Day Catalog (WITH FALLBACK)
// --------------------------------------------------

// DayCatalog builds the catalog for one weekday. When the store cannot
// be read, or the day has no menu, the built-in catalog is used and
// fallback is true.
func (s *Service) DayCatalog(ctx context.Context, day string) (cat *Catalog, fallback bool, err error) {
	if !IsWeekday(day) {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	doc, err := s.GetMenu(ctx)
	if err != nil {
		s.logger.Warn("menu unavailable, using default catalog",
			zap.String("day", day),
			zap.Error(err),
		)
		return DefaultDayCatalog(day), true, nil
	}

	daily, ok := doc.Day(day)
	if !ok || len(daily) == 0 {
		return DefaultDayCatalog(day), true, nil
	}

	return NewCatalog(day, daily), false, nil
}

// DefaultDay is the weekday to show at t. Sunday, when the restaurant is
// closed, shows Monday's menu.
func DefaultDay(t time.Time) string {
	wd := t.Weekday()
	if wd >= time.Monday && wd <= time.Saturday {
		return Weekdays[wd-1]
	}
	return Weekdays[0]
}

// IsWeekday reports whether day is one of the served weekdays.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
