package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cucharon/internal/client"
	"cucharon/internal/menu"
	"cucharon/internal/order"

	"github.com/spf13/cobra"
)

var (
	orderAPI   string
	orderDay   string
	orderItems []string
	orderSides = map[menu.Category]*string{
		menu.CategoryArroz:    new(string),
		menu.CategoryCrema:    new(string),
		menu.CategoryEnsalada: new(string),
	}
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Build an order from the day's menu and print the WhatsApp link",
	Long: `order fetches the menu from a running API (or falls back to the
built-in catalog), applies --item selections and side choices, and prints
the order summary, the message and the wa.me link.

Without --item it lists the day's menu with the ids to order by.`,
	Example: `  cucharon order --day Lunes --item tostones=2 --item sancocho=1 --arroz "Arroz Blanco"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		checkout, err := newCheckout(cfg)
		if err != nil {
			return err
		}

		day := orderDay
		if day == "" {
			day = menu.DefaultDay(time.Now().In(checkout.Formatter.Location))
		}

		api := orderAPI
		if api == "" {
			api = cfg.APIURL
		}

		catalog, fallback, err := client.New(api, nil, log).DayCatalog(ctx, day)
		if err != nil {
			return err
		}
		if fallback {
			fmt.Fprintln(out, "(menú no disponible, usando el menú por defecto)")
		}

		if len(orderItems) == 0 {
			printCatalog(out, catalog)
			return nil
		}

		sel, err := buildSelection(catalog, orderItems, orderSides)
		if err != nil {
			return err
		}

		derived := order.Derive(sel.Quantities(), sel.Sides(), catalog)
		handoff, err := checkout.Prepare(derived, sel.Sides(), order.Meta{Day: day})
		if err != nil {
			var w *order.Warning
			if errors.As(err, &w) {
				return errors.New(strings.TrimSpace(w.Message + " " + w.Detail))
			}
			return err
		}

		fmt.Fprintln(out, handoff.Message)
		fmt.Fprintln(out)
		fmt.Fprintln(out, handoff.Link)
		return nil
	},
}

func init() {
	orderCmd.Flags().StringVar(&orderAPI, "api", "", "API base URL (default API_URL)")
	orderCmd.Flags().StringVar(&orderDay, "day", "", "Weekday to order from (default today, Lunes on Sundays)")
	orderCmd.Flags().StringArrayVar(&orderItems, "item", nil, "Item to order as id=qty (repeatable)")
	for cat, value := range orderSides {
		orderCmd.Flags().StringVar(value, string(cat), "", "Side choice for "+cat.Title())
	}
}

// parseItem splits "id=qty"; a bare id means one.
func parseItem(s string) (string, int, error) {
	id, qty, found := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", 0, fmt.Errorf("invalid --item %q", s)
	}
	if !found {
		return id, 1, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity in --item %q", s)
	}
	return id, n, nil
}

func buildSelection(
	catalog *menu.Catalog,
	items []string,
	sides map[menu.Category]*string,
) (*order.Selection, error) {
	sel := order.NewSelection()

	for _, raw := range items {
		id, qty, err := parseItem(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := catalog.Lookup(id); !ok {
			return nil, fmt.Errorf("%q is not on the %s menu", id, catalog.Day)
		}
		sel.SetQuantity(id, sel.Quantity(id)+qty)
	}

	for cat, value := range sides {
		if value == nil || strings.TrimSpace(*value) == "" {
			continue
		}
		if !catalog.HasSideOption(cat, strings.TrimSpace(*value)) {
			return nil, fmt.Errorf("%q is not a %s option", *value, cat.Title())
		}
		if err := sel.SetSide(cat, *value); err != nil {
			return nil, err
		}
	}

	return sel, nil
}

func printCatalog(out io.Writer, catalog *menu.Catalog) {
	fmt.Fprintf(out, "Menú del %s\n", catalog.Day)

	for _, section := range catalog.Sections() {
		fmt.Fprintf(out, "\n%s\n", section.Title)
		for _, item := range section.Items {
			fmt.Fprintf(out, "  %-28s %-34s %s\n", item.ID, item.Name, order.FormatAmount(item.Price))
		}
	}

	for _, cat := range menu.SideCategories {
		options := catalog.SideOptions(cat)
		if len(options) == 0 {
			continue
		}
		names := make([]string, 0, len(options))
		for _, o := range options {
			names = append(names, o.Name)
		}
		fmt.Fprintf(out, "\n--%s: %s\n", cat, strings.Join(names, ", "))
	}
}
