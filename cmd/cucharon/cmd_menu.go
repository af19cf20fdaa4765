package main

import (
	"fmt"
	"os"

	"cucharon/internal/client"
	"cucharon/internal/menu"

	"github.com/spf13/cobra"
)

var (
	menuAPI      string
	menuPassword string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Admin menu tools",
}

var menuPushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Validate a menu document and replace the stored menu with it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		doc, err := menu.ParseDocument(raw)
		if err != nil {
			return err
		}

		api := menuAPI
		if api == "" {
			api = cfg.APIURL
		}
		password := menuPassword
		if password == "" {
			password = cfg.AdminPassword
		}

		c := client.New(api, nil, log)
		if err := c.Login(ctx, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		defer func() { _ = c.Logout(ctx) }()

		saved, err := c.SaveMenu(ctx, doc)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Menú guardado: %d días\n", len(saved.Days))
		return nil
	},
}

func init() {
	menuPushCmd.Flags().StringVar(&menuAPI, "api", "", "API base URL (default API_URL)")
	menuPushCmd.Flags().StringVar(&menuPassword, "password", "", "Admin password (default ADMIN_PASSWORD)")
	menuCmd.AddCommand(menuPushCmd)
}
