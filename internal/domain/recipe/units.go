package recipe

// unitPlurals maps singular unit names to their plural forms for common
// cooking units. Abbreviations that don't inflect map to themselves so they
// survive round trips through the pluralizer unchanged.
var unitPlurals = map[string]string{
	"cup":        "cups",
	"tablespoon": "tablespoons",
	"tbsp":       "tbsp",
	"teaspoon":   "teaspoons",
	"tsp":        "tsp",
	"pound":      "pounds",
	"lb":         "lbs",
	"ounce":      "ounces",
	"oz":         "oz",
	"gram":       "grams",
	"g":          "g",
	"kilogram":   "kilograms",
	"kg":         "kg",
	"liter":      "liters",
	"l":          "l",
	"milliliter": "milliliters",
	"ml":         "ml",
	"piece":      "pieces",
	"slice":      "slices",
	"clove":      "cloves",
	"can":        "cans",
	"package":    "packages",
	"bag":        "bags",
}

// unitSingulars is the inverse table, built once at init.
var unitSingulars = func() map[string]string {
	m := make(map[string]string, len(unitPlurals))
	for singular, plural := range unitPlurals {
		m[plural] = singular
	}
	return m
}()

// PluralizeUnit maps a unit name to the grammatically correct form for the
// given amount. An empty unit stays empty. Units outside the table pass
// through verbatim: recipes may use arbitrary free-text units, and guessing
// at suffix rules would mangle them.
//
// The amount == 1 comparison is deliberately exact, matching the behavior
// the rest of the system was built against. A scaled amount that lands at
// 0.9999999999 rather than 1 pluralizes; see the scaling tests.
func PluralizeUnit(unit string, amount float64) string {
	if unit == "" {
		return ""
	}

	if amount == 1 {
		if singular, ok := unitSingulars[unit]; ok {
			return singular
		}
		return unit
	}

	if plural, ok := unitPlurals[unit]; ok {
		return plural
	}
	return unit
}
