package recipe

import "time"

// ScaleIngredient applies a scaling ratio to one ingredient. Ratio is
// newServings / baseServings and may be below, at, or above 1.
//
// Ingredients without a numeric amount ("to taste") are returned as-is.
// Otherwise the returned copy carries the multiplied amount and the unit
// re-pluralized for it; identity, name, and notes are preserved. The input
// is never mutated.
//
// A non-finite or negative stored amount propagates arithmetically rather
// than failing here, so one bad ingredient cannot abort a batch scale; the
// display formatter renders such values safely.
func ScaleIngredient(ing Ingredient, ratio float64) Ingredient {
	if ing.Amount == nil {
		return ing
	}

	scaled := *ing.Amount * ratio
	out := ing
	out.Amount = &scaled
	out.Unit = PluralizeUnit(ing.Unit, scaled)
	return out
}

// Scale computes a copy of the recipe adjusted to newServings. Every
// ingredient amount is multiplied by newServings / r.Servings() in display
// order; all other fields pass through unchanged and the receiver is not
// modified. Scaling to the recipe's own serving count reproduces every
// amount and unit exactly.
//
// Trust boundary: callers validate 1 <= newServings <= 100 (the serving
// stepper's range) before calling. Scale does not re-check the bound.
func (r *Recipe) Scale(newServings int) *Recipe {
	ratio := float64(newServings) / float64(r.servings)

	scaled := make([]Ingredient, len(r.ingredients))
	for i, ing := range r.ingredients {
		scaled[i] = ScaleIngredient(ing, ratio)
	}

	out := *r
	out.servings = newServings
	out.ingredients = scaled
	out.events = nil
	return &out
}

// Rescale permanently adopts newServings as the recipe's baseline,
// rewriting every ingredient amount proportionally. Unlike Scale it
// mutates the receiver and records a domain event; it is the write path
// behind the "permanently rescale" action, so it re-checks the serving
// bound instead of trusting the caller.
func (r *Recipe) Rescale(newServings int) error {
	if newServings < MinServings || newServings > MaxServings {
		return ErrInvalidServings
	}

	oldServings := r.servings
	scaled := r.Scale(newServings)
	r.servings = scaled.servings
	r.ingredients = scaled.ingredients
	r.updatedAt = time.Now()

	r.addEvent(RecipeRescaledEvent{
		RecipeID:    r.id,
		OldServings: oldServings,
		NewServings: newServings,
		RescaledAt:  r.updatedAt,
	})

	return nil
}
