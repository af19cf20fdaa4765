package menu

// TaggedItem is a catalog item with its category resolved at load time,
// so classification never needs to scan category lists.
type TaggedItem struct {
	MenuItem
	Category Category
	// Position is the item's index in catalog display order.
	Position int
}

// IsExtra reports whether the item belongs to the extras category.
func (t TaggedItem) IsExtra() bool {
	return t.Category == CategoryExtras
}

// IsBeverage reports whether the item belongs to the juices category.
func (t TaggedItem) IsBeverage() bool {
	return t.Category == CategoryJugos
}
