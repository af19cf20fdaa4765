package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cucharon/internal/auth"
	"cucharon/internal/menu"
	"cucharon/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// ───────── STORE ─────────
		repo, closeRepo, err := openMenuRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		snapshots, err := newSnapshotter(ctx, cfg, log)
		if err != nil {
			return err
		}
		menus := menu.NewService(repo, snapshots, log)

		// ───────── AUTH ─────────
		sessions, err := newSessionStore(cfg)
		if err != nil {
			return err
		}
		authService, err := auth.NewService(cfg.AdminPassword, cfg.AdminPasswordHash, sessions)
		if err != nil {
			return err
		}

		// ───────── ORDERS ─────────
		checkout, err := newCheckout(cfg)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr: ":" + cfg.Port,
			Handler: router.NewRouter(router.Deps{
				Logger:      log,
				Menus:       menus,
				Auth:        authService,
				Checkout:    checkout,
				CORSOrigins: cfg.AllowedOrigins(),
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("API running",
				zap.String("addr", srv.Addr),
				zap.String("store", cfg.StoreDriver),
				zap.String("sessions", cfg.SessionBackend),
				zap.Bool("snapshots", snapshots != nil),
			)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
