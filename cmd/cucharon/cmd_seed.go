package main

import (
	"fmt"

	"cucharon/internal/menu"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the configured menu store if it is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		repo, closeRepo, err := openMenuRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		doc, err := menu.NewService(repo, nil, log).GetMenu(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, day := range menu.Weekdays {
			daily, _ := doc.Day(day)
			items := 0
			for _, list := range daily {
				items += len(list)
			}
			fmt.Fprintf(out, "%-10s %d categorías, %d platos\n", day, len(daily), items)
		}
		return nil
	},
}
