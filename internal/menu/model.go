package menu

// Category is the tag attached to every item when a catalog is loaded.
type Category string

const (
	CategoryEspecial    Category = "especial"
	CategoryPlatoDelDia Category = "platoDelDia"
	CategoryExtras      Category = "extras"
	CategoryJugos       Category = "jugos"

	CategoryArroz    Category = "arroz"
	CategoryCrema    Category = "crema"
	CategoryEnsalada Category = "ensalada"
)

// GlobalKey identifies the single persisted menu document.
const GlobalKey = "global"

// Weekdays is the ordered set of days the restaurant serves.
// The literal names are part of the public API and of the stored document.
var Weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// MainCategories are the orderable categories, in display order.
var MainCategories = []Category{
	CategoryEspecial,
	CategoryPlatoDelDia,
	CategoryExtras,
	CategoryJugos,
}

// SideCategories are the side-dish slots, in the order they appear in an order.
var SideCategories = []Category{
	CategoryArroz,
	CategoryCrema,
	CategoryEnsalada,
}

var CategoryTitles = map[Category]string{
	CategoryEspecial:    "ESPECIAL",
	CategoryPlatoDelDia: "PLATO DEL DÍA",
	CategoryExtras:      "EXTRAS",
	CategoryJugos:       "JUGOS",
	CategoryArroz:       "ARROZ",
	CategoryCrema:       "CREMAS Y GRANOS",
	CategoryEnsalada:    "ENSALADAS",
}

// IsSide reports whether c is one of the side-dish slots.
func (c Category) IsSide() bool {
	for _, s := range SideCategories {
		if c == s {
			return true
		}
	}
	return false
}

// Title returns the display title, falling back to the raw key
// for categories an administrator added by hand.
func (c Category) Title() string {
	if t, ok := CategoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// MenuItem is a single orderable dish as stored and served.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// DayMenu maps a category key to its ordered items.
type DayMenu map[string][]MenuItem

// Document is the whole week as persisted under GlobalKey.
type Document struct {
	Days map[string]DayMenu `json:"days"`
}

// MenuCategory is a titled category, used for display.
type MenuCategory struct {
	Key   Category   `json:"key"`
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// IsEmpty reports whether the document has no day entries at all.
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Days) == 0
}

// Day returns the menu for a weekday, or false when absent.
func (d *Document) Day(day string) (DayMenu, bool) {
	if d == nil {
		return nil, false
	}
	m, ok := d.Days[day]
	return m, ok
}
