package menu

// defaultItems is the built-in menu. It serves both as the seed template
// for an empty store and as the fallback when the menu cannot be fetched.
var defaultItems = map[Category][]MenuItem{
	CategoryEspecial: {
		{ID: "sancocho", Name: "Sancocho de 3 Carnes", Price: 375},
		{ID: "mondongo", Name: "Mondongo a la Criolla", Price: 375},
		{ID: "patimongo", Name: "Pati Mongó y Compañía", Price: 350},
	},
	CategoryPlatoDelDia: {
		{ID: "cerdoGuisado", Name: "Cerdo Guisado Criollo", Price: 250},
		{ID: "bistec", Name: "Bistec Encebollado", Price: 275},
		{ID: "resGuisada", Name: "Res Guisada Tradicional", Price: 250},
		{ID: "polloGuisado", Name: "Pollo Guisado Casero", Price: 250},
		{ID: "polloFrito", Name: "Pollo Frito Crocante", Price: 250},
		{ID: "polloHorno", Name: "Pollo al Horno Doradito", Price: 250},
		{ID: "pechurina", Name: "Pechurina Empanizada", Price: 250},
		{ID: "pechugaPlancha", Name: "Pechuga a la Plancha", Price: 400},
		{ID: "pechugaSalteada", Name: "Pechuga Salteada Vegetales", Price: 400},
		{ID: "pechugaCrema", Name: "Pechuga a la Crema", Price: 400},
	},
	CategoryExtras: {
		{ID: "tostones", Name: "Tostones", Price: 100},
		{ID: "arepitaMaiz", Name: "Arepita Maíz", Price: 25},
		{ID: "arepitaYuca", Name: "Arepita Yuca", Price: 25},
		{ID: "batataFrita", Name: "Batata Frita", Price: 100},
	},
	CategoryJugos: {
		{ID: "cereza", Name: "Cereza", Price: 100},
		{ID: "limon", Name: "Limón", Price: 100},
		{ID: "chinola", Name: "Chinola", Price: 100},
		{ID: "tamarindo", Name: "Tamarindo", Price: 100},
	},
}

var defaultSides = map[Category][]MenuItem{
	CategoryArroz: {
		{ID: "arrozMaiz", Name: "Arroz con Maíz"},
		{ID: "arrozBlanco", Name: "Arroz Blanco"},
	},
	CategoryCrema: {
		{ID: "habichuelasNegras", Name: "Habichuelas Negras"},
		{ID: "habichuelasRojas", Name: "Habichuelas Rojas"},
		{ID: "guandules", Name: "Guandules"},
	},
	CategoryEnsalada: {
		{ID: "ensaladaVerde", Name: "Ensalada Verde"},
		{ID: "ensaladaPasta", Name: "Ensalada de Pasta"},
		{ID: "ensaladaVegetales", Name: "Ensalada de Vegetales"},
		{ID: "ensaladaTipile", Name: "Ensalada Tipile"},
	},
}

// DefaultCatalog returns a fresh copy of the built-in day menu with its
// stable ids. Callers may modify the result.
func DefaultCatalog() DayMenu {
	out := make(DayMenu, len(defaultItems))
	for cat, items := range defaultItems {
		out[string(cat)] = append([]MenuItem(nil), items...)
	}
	return out
}

// DefaultSideOptions returns a fresh copy of the built-in side-dish choices.
func DefaultSideOptions() map[Category][]MenuItem {
	out := make(map[Category][]MenuItem, len(defaultSides))
	for cat, items := range defaultSides {
		out[cat] = append([]MenuItem(nil), items...)
	}
	return out
}
