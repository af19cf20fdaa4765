package menu

import "sort"

// Catalog is the read-only set of orderable items for one day.
// Items are tagged with their category when the catalog is built.
type Catalog struct {
	Day      string
	sections []MenuCategory
	index    map[string]TaggedItem
	sides    map[Category][]MenuItem
}

// NewCatalog builds a catalog for day from its stored menu.
// Main categories come first in their fixed order; categories an
// administrator added by hand follow alphabetically and are treated as
// main dishes. Side categories are kept apart and never indexed by id.
func NewCatalog(day string, m DayMenu) *Catalog {
	c := &Catalog{
		Day:   day,
		index: make(map[string]TaggedItem),
		sides: DefaultSideOptions(),
	}

	for _, key := range orderedKeys(m) {
		cat := Category(key)
		items := m[key]

		if cat.IsSide() {
			if len(items) > 0 {
				c.sides[cat] = append([]MenuItem(nil), items...)
			}
			continue
		}

		section := MenuCategory{
			Key:   cat,
			Title: cat.Title(),
			Items: append([]MenuItem(nil), items...),
		}
		for _, item := range items {
			if _, dup := c.index[item.ID]; dup {
				continue
			}
			c.index[item.ID] = TaggedItem{
				MenuItem: item,
				Category: cat,
				Position: len(c.index),
			}
		}
		c.sections = append(c.sections, section)
	}

	return c
}

// DefaultDayCatalog is the catalog used when no stored menu is available.
func DefaultDayCatalog(day string) *Catalog {
	return NewCatalog(day, DefaultCatalog())
}

// Lookup returns the tagged item for id.
func (c *Catalog) Lookup(id string) (TaggedItem, bool) {
	item, ok := c.index[id]
	return item, ok
}

// Sections returns the categories in display order.
func (c *Catalog) Sections() []MenuCategory {
	return c.sections
}

// SideOptions returns the choices for a side slot.
func (c *Catalog) SideOptions(cat Category) []MenuItem {
	return c.sides[cat]
}

// HasSideOption reports whether name is a valid choice for the slot.
func (c *Catalog) HasSideOption(cat Category, name string) bool {
	for _, opt := range c.sides[cat] {
		if opt.Name == name {
			return true
		}
	}
	return false
}

// Len is the number of orderable items.
func (c *Catalog) Len() int {
	return len(c.index)
}

func orderedKeys(m DayMenu) []string {
	keys := make([]string, 0, len(m))
	known := make(map[string]bool, len(MainCategories))

	for _, cat := range MainCategories {
		known[string(cat)] = true
		if _, ok := m[string(cat)]; ok {
			keys = append(keys, string(cat))
		}
	}

	var extra []string
	for k := range m {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	return append(keys, extra...)
}
