package main

import (
	"fmt"
	"os"

	"cucharon/internal/config"
	"cucharon/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cucharon",
	Short: "Weekly menu and ordering backend for El Cucharon JR",
	Long: `cucharon serves the public weekly menu, the admin menu editor API and
the WhatsApp order handoff. It also ships terminal clients for ordering
and for pushing a menu to a running server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log, err = logger.New(cfg.AppEnv, cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(menuCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
