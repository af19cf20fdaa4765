package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_TagsItemsByCategory(t *testing.T) {
	c := DefaultDayCatalog("Lunes")

	cases := map[string]Category{
		"sancocho":     CategoryEspecial,
		"bistec":       CategoryPlatoDelDia,
		"tostones":     CategoryExtras,
		"chinola":      CategoryJugos,
		"pechugaCrema": CategoryPlatoDelDia,
	}
	for id, want := range cases {
		item, ok := c.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, want, item.Category, id)
	}

	tostones, _ := c.Lookup("tostones")
	assert.True(t, tostones.IsExtra())
	chinola, _ := c.Lookup("chinola")
	assert.True(t, chinola.IsBeverage())
}

func TestCatalog_SectionsInFixedOrder(t *testing.T) {
	m := DayMenu{
		"jugos":       {{ID: "j", Name: "Limón", Price: 100}},
		"postres":     {{ID: "p", Name: "Flan", Price: 150}},
		"especial":    {{ID: "e", Name: "Sancocho", Price: 375}},
		"extras":      {{ID: "x", Name: "Tostones", Price: 100}},
		"platoDelDia": {{ID: "d", Name: "Bistec", Price: 275}},
	}

	c := NewCatalog("Martes", m)

	var keys []Category
	for _, s := range c.Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []Category{"especial", "platoDelDia", "extras", "jugos", "postres"}, keys)
	assert.Equal(t, "PLATO DEL DÍA", c.Sections()[1].Title)
	assert.Equal(t, "postres", c.Sections()[4].Title)

	e, _ := c.Lookup("e")
	j, _ := c.Lookup("j")
	p, _ := c.Lookup("p")
	assert.Less(t, e.Position, j.Position)
	assert.Less(t, j.Position, p.Position)
}

func TestCatalog_SideItemsAreNotOrderable(t *testing.T) {
	m := DefaultCatalog()
	m["arroz"] = []MenuItem{{ID: "arrozMoro", Name: "Moro de Guandules"}}

	c := NewCatalog("Lunes", m)

	_, ok := c.Lookup("arrozMoro")
	assert.False(t, ok)
	assert.True(t, c.HasSideOption(CategoryArroz, "Moro de Guandules"))
	assert.False(t, c.HasSideOption(CategoryArroz, "Arroz Blanco"))

	// slots without stored options keep the built-in choices
	assert.True(t, c.HasSideOption(CategoryCrema, "Guandules"))
	assert.Len(t, c.SideOptions(CategoryEnsalada), 4)
}

func TestCatalog_UnknownID(t *testing.T) {
	c := DefaultDayCatalog("Lunes")

	_, ok := c.Lookup("does-not-exist")
	assert.False(t, ok)
	assert.Equal(t, 21, c.Len())
}
