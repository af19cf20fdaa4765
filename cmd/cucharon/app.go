package main

import (
	"context"
	"fmt"

	"cucharon/internal/auth"
	"cucharon/internal/config"
	"cucharon/internal/db"
	"cucharon/internal/menu"
	"cucharon/internal/order"
	"cucharon/internal/storage"

	"go.uber.org/zap"
)

// openMenuRepository returns the configured store and a func releasing it.
func openMenuRepository(ctx context.Context, cfg *config.Config) (menu.Repository, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return menu.NewPostgresRepository(pool), pool.Close, nil

	case "sqlite":
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return menu.NewSQLiteRepository(sqlDB), func() { _ = sqlDB.Close() }, nil

	case "memory", "":
		return menu.NewInMemoryRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func newSessionStore(cfg *config.Config) (auth.SessionStore, error) {
	if cfg.SessionBackend == "jwt" {
		return auth.NewJWTSessionStore(cfg.JWTSecret, cfg.SessionTTL)
	}
	return auth.NewMemorySessionStore(cfg.SessionTTL), nil
}

// newSnapshotter returns nil when R2 is not configured.
func newSnapshotter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (menu.Snapshotter, error) {
	if !cfg.R2Enabled() {
		return nil, nil
	}

	r2, err := storage.NewR2Client(ctx, storage.R2Config{
		Endpoint:      cfg.R2Endpoint,
		AccessKey:     cfg.R2AccessKey,
		SecretKey:     cfg.R2SecretKey,
		Bucket:        cfg.R2Bucket,
		PublicBaseURL: cfg.R2PublicBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("R2 init failed: %w", err)
	}
	return storage.NewMenuSnapshotter(r2, logger), nil
}

func newCheckout(cfg *config.Config) (*order.Checkout, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	policy, err := order.ParseSidePolicy(cfg.SidePolicy)
	if err != nil {
		return nil, err
	}

	return &order.Checkout{
		Formatter: order.NewFormatter(cfg.RestaurantName, loc),
		Phone:     cfg.WhatsAppPhone,
		Policy:    policy,
	}, nil
}
