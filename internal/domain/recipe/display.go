package recipe

import (
	"math"
	"strings"
)

// FormatIngredient composes an ingredient's display string:
//
//	"1 ½ cups flour (sifted)"
//	"salt (to taste)"
//
// An ingredient without a numeric amount renders as name plus optional
// parenthesized notes, with any stored unit ignored. A present amount that
// is NaN, infinite, or negative falls back to the same rendering: corrupted
// data degrades to a readable line instead of "NaN cups flour".
//
// The unit is run through PluralizeUnit for the amount being rendered, so
// "cup" at 1.5 displays as "cups" whether or not the ingredient came out of
// the scaler.
func FormatIngredient(ing Ingredient) string {
	if ing.Amount == nil || !isDisplayable(*ing.Amount) {
		return withNotes(ing.Name, ing.Notes)
	}

	var b strings.Builder
	b.WriteString(FormatQuantity(*ing.Amount))
	if ing.Unit != "" {
		b.WriteString(" ")
		b.WriteString(PluralizeUnit(ing.Unit, *ing.Amount))
	}
	b.WriteString(" ")
	b.WriteString(ing.Name)
	return withNotes(b.String(), ing.Notes)
}

func isDisplayable(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}

func withNotes(s, notes string) string {
	if notes == "" {
		return s
	}
	return s + " (" + notes + ")"
}
