package recipe

import "errors"

// Serving-count bounds. The HTTP validation layer enforces these before a
// scale request ever reaches the domain; NewRecipe enforces them for the
// stored baseline.
const (
	MinServings = 1
	MaxServings = 100
)

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrTitleTooShort      = errors.New("recipe title must be at least 3 characters")
	ErrTitleTooLong       = errors.New("recipe title must not exceed 200 characters")
	ErrDescriptionTooLong = errors.New("recipe description must not exceed 2000 characters")
	ErrInvalidServings    = errors.New("servings must be between 1 and 100")

	// Ingredient validation errors
	ErrIngredientNameRequired      = errors.New("ingredient name is required")
	ErrIngredientAmountNotPositive = errors.New("ingredient amount must be greater than 0")

	// Lookup errors
	ErrRecipeNotFound = errors.New("recipe not found")

	// Permission errors
	ErrNotRecipeOwner = errors.New("only recipe owner can perform this action")
)
