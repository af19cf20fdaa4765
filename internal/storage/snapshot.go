package storage

import (
	"context"
	"encoding/json"
	"time"

	"cucharon/internal/menu"

	"go.uber.org/zap"
)

// MenuSnapshotter archives every saved menu as menus/<timestamp>.json.
type MenuSnapshotter struct {
	r2     *R2Client
	logger *zap.Logger
	now    func() time.Time
}

func NewMenuSnapshotter(r2 *R2Client, logger *zap.Logger) *MenuSnapshotter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuSnapshotter{r2: r2, logger: logger, now: time.Now}
}

func (s *MenuSnapshotter) Snapshot(ctx context.Context, doc *menu.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	key := "menus/" + s.now().UTC().Format("20060102T150405.000Z") + ".json"

	url, err := s.r2.PutJSON(ctx, key, body)
	if err != nil {
		return err
	}

	s.logger.Info("menu snapshot stored", zap.String("url", url))
	return nil
}
