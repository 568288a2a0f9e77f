package recipe

import (
	"strings"

	"github.com/google/uuid"
)

// Ingredient is one line item within a recipe. It is a value object:
// scaling produces new values and never mutates existing ones.
//
// A nil Amount is the "to taste" sentinel: the ingredient has no numeric
// quantity and scaling leaves it untouched. Unit may still be set on such
// an ingredient; formatting ignores it in that case.
type Ingredient struct {
	ID     uuid.UUID
	Name   string
	Amount *float64
	Unit   string
	Notes  string
}

// Amt is a convenience constructor for ingredient amounts.
func Amt(v float64) *float64 {
	return &v
}

// HasAmount reports whether the ingredient carries a numeric quantity.
func (i Ingredient) HasAmount() bool {
	return i.Amount != nil
}

// Validate validates the ingredient.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrIngredientNameRequired
	}
	if i.Amount != nil && *i.Amount <= 0 {
		return ErrIngredientAmountNotPositive
	}
	return nil
}
