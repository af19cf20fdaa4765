package menu

import "github.com/google/uuid"

// NewItemID generates identifiers for seeded items.
func NewItemID() string {
	return uuid.New().String()
}

// Seed expands the built-in catalog into every weekday.
// Each item gets a fresh id per day; ids are never shared across days,
// even for identical dishes.
func Seed(newID func() string) *Document {
	if newID == nil {
		newID = NewItemID
	}

	doc := &Document{Days: make(map[string]DayMenu, len(Weekdays))}

	for _, day := range Weekdays {
		daily := make(DayMenu, len(MainCategories))
		for _, cat := range MainCategories {
			template := defaultItems[cat]
			items := make([]MenuItem, len(template))
			for i, item := range template {
				item.ID = newID()
				items[i] = item
			}
			daily[string(cat)] = items
		}
		doc.Days[day] = daily
	}

	return doc
}
