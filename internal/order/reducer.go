package order

import (
	"sort"

	"cucharon/internal/menu"
)

// OrderLine is one row of a derived order.
type OrderLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// DerivedOrder is a pure projection of a selection against a catalog.
// It is recomputed on every change and never stored.
type DerivedOrder struct {
	Items     []OrderLine `json:"items"`
	SideNotes []OrderLine `json:"sideNotes"`
	Extras    []OrderLine `json:"extras"`
	Beverages []OrderLine `json:"beverages"`
	Total     float64     `json:"total"`
}

// ItemLookup resolves an item id to its tagged catalog entry.
type ItemLookup interface {
	Lookup(id string) (menu.TaggedItem, bool)
}

// SideLabels prefix each side note in summaries and messages.
var SideLabels = map[menu.Category]string{
	menu.CategoryArroz:    "Arroz",
	menu.CategoryCrema:    "Crema/Grano",
	menu.CategoryEnsalada: "Ensalada",
}

// Derive classifies every selected item and totals the order.
//
// Ids missing from the catalog are skipped, as are quantities <= 0.
// Lines follow catalog order, so the result does not depend on map
// iteration. Side notes carry price 0 and never add to the total.
func Derive(quantities map[string]int, sides SideSelection, lookup ItemLookup) DerivedOrder {
	order := DerivedOrder{
		Items:     []OrderLine{},
		SideNotes: []OrderLine{},
		Extras:    []OrderLine{},
		Beverages: []OrderLine{},
	}

	type selected struct {
		item     menu.TaggedItem
		quantity int
	}

	var picked []selected
	for id, q := range quantities {
		if q <= 0 {
			continue
		}
		item, ok := lookup.Lookup(id)
		if !ok {
			continue
		}
		picked = append(picked, selected{item: item, quantity: q})
	}

	sort.Slice(picked, func(i, j int) bool {
		if picked[i].item.Position != picked[j].item.Position {
			return picked[i].item.Position < picked[j].item.Position
		}
		return picked[i].item.ID < picked[j].item.ID
	})

	for _, p := range picked {
		line := OrderLine{
			ID:       p.item.ID,
			Name:     p.item.Name,
			Price:    p.item.Price,
			Quantity: p.quantity,
		}

		switch {
		case p.item.IsExtra():
			order.Extras = append(order.Extras, line)
		case p.item.IsBeverage():
			order.Beverages = append(order.Beverages, line)
		default:
			order.Items = append(order.Items, line)
		}

		order.Total += line.Price * float64(line.Quantity)
	}

	for _, cat := range menu.SideCategories {
		name, ok := sides[cat]
		if !ok || name == "" {
			continue
		}
		order.SideNotes = append(order.SideNotes, OrderLine{
			ID:       "side-" + string(cat),
			Name:     SideLabels[cat] + ": " + name,
			Price:    0,
			Quantity: 1,
		})
	}

	return order
}

// HasMainDishes reports whether any main dish was ordered.
func (o DerivedOrder) HasMainDishes() bool {
	return len(o.Items) > 0
}

// IsEmpty reports whether there is nothing to send.
func (o DerivedOrder) IsEmpty() bool {
	return o.Total == 0
}
