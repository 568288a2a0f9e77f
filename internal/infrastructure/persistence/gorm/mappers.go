package gorm

import (
	"github.com/ladlehq/ladle/internal/domain/recipe"
	"github.com/ladlehq/ladle/internal/domain/user"
)

// RecipeToModel converts a domain recipe to its GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make(IngredientsJSON, len(r.Ingredients()))
	for i, ing := range r.Ingredients() {
		ingredients[i] = IngredientRecord{
			ID:     ing.ID,
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		}
	}

	return &RecipeModel{
		ID:          r.ID(),
		Version:     r.Version(),
		Title:       r.Title(),
		Description: r.Description(),
		AuthorID:    r.AuthorID(),
		Servings:    r.Servings(),
		Ingredients: ingredients,
		Tags:        StringSlice(r.Tags()),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

// ModelToRecipe converts a GORM model back to a domain recipe
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, len(m.Ingredients))
	for i, rec := range m.Ingredients {
		ingredients[i] = recipe.Ingredient{
			ID:     rec.ID,
			Name:   rec.Name,
			Amount: rec.Amount,
			Unit:   rec.Unit,
			Notes:  rec.Notes,
		}
	}

	return recipe.Restore(
		m.ID,
		m.Version,
		m.Title,
		m.Description,
		m.AuthorID,
		m.Servings,
		ingredients,
		[]string(m.Tags),
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// UserToModel converts a domain user to its GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:                u.ID(),
		Email:             u.Email(),
		Name:              u.Name(),
		MeasurementSystem: string(u.Preferences().MeasurementSystem),
		DefaultServings:   u.Preferences().DefaultServings,
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}

// ModelToUser converts a GORM model back to a domain user
func ModelToUser(m *UserModel) *user.User {
	return user.Restore(
		m.ID,
		m.Email,
		m.Name,
		user.Preferences{
			MeasurementSystem: user.MeasurementSystem(m.MeasurementSystem),
			DefaultServings:   m.DefaultServings,
		},
		m.CreatedAt,
		m.UpdatedAt,
	)
}
