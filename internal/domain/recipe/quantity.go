package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// quantityEpsilon is the tolerance used when deciding whether an amount is
// a whole number or one of the common culinary fractions.
const quantityEpsilon = 1e-6

// commonFractions maps culinary fractions to their Unicode glyphs, in
// ascending order. Thirds sit between the eighths they fall among so a
// single linear scan finds the closest match within tolerance.
var commonFractions = []struct {
	value float64
	glyph string
}{
	{1.0 / 8, "⅛"},
	{1.0 / 4, "¼"},
	{1.0 / 3, "⅓"},
	{3.0 / 8, "⅜"},
	{1.0 / 2, "½"},
	{5.0 / 8, "⅝"},
	{2.0 / 3, "⅔"},
	{3.0 / 4, "¾"},
	{7.0 / 8, "⅞"},
}

// FormatQuantity converts a finite, non-negative amount into a
// human-friendly string: a plain integer when the fractional part is
// negligible, a whole number plus a common culinary fraction glyph when one
// matches within tolerance, and a trimmed two-decimal string otherwise.
//
// The function is total over its valid input domain and never fails;
// callers are responsible for screening non-finite values (see
// FormatIngredient).
func FormatQuantity(amount float64) string {
	whole := math.Floor(amount)
	frac := amount - whole

	if frac < quantityEpsilon {
		return strconv.Itoa(int(whole))
	}

	for _, cf := range commonFractions {
		if math.Abs(frac-cf.value) < quantityEpsilon {
			if whole > 0 {
				return fmt.Sprintf("%d %s", int(whole), cf.glyph)
			}
			return cf.glyph
		}
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
