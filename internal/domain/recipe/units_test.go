package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralizeUnit(t *testing.T) {
	tests := []struct {
		name   string
		unit   string
		amount float64
		want   string
	}{
		{"SingularAtOne", "cup", 1, "cup"},
		{"SingularAtTwo", "cup", 2, "cups"},
		{"PluralAtOneSingularizes", "cups", 1, "cup"},
		{"AbbreviationUnchanged", "tbsp", 3, "tbsp"},
		{"AbbreviationUnchangedAtOne", "tsp", 1, "tsp"},
		{"PoundAbbreviation", "lb", 4, "lbs"},
		{"PoundAbbreviationBackToSingular", "lbs", 1, "lb"},
		{"MetricSymbolUnchanged", "g", 500, "g"},
		{"FractionalAmountPluralizes", "cup", 0.5, "cups"},
		{"UnknownUnitPassesThrough", "bizarre-unit", 5, "bizarre-unit"},
		{"UnknownUnitAtOnePassesThrough", "bizarre-unit", 1, "bizarre-unit"},
		{"EmptyUnitStaysEmpty", "", 2, ""},
		{"NearOneStillPluralizes", "cup", 0.9999999999, "cups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PluralizeUnit(tt.unit, tt.amount))
		})
	}
}

func TestPluralizeUnitTableIsBidirectional(t *testing.T) {
	for singular, plural := range unitPlurals {
		assert.Equal(t, singular, PluralizeUnit(plural, 1), "plural %q should singularize", plural)
		assert.Equal(t, plural, PluralizeUnit(singular, 2), "singular %q should pluralize", singular)
	}
}
