package recipe

import (
	"time"

	"github.com/ladlehq/ladle/internal/domain/recipe"
	"github.com/ladlehq/ladle/internal/ports/inbound"
)

// entityToDTO converts a domain entity to its transfer representation,
// computing display strings for every ingredient as it goes.
func entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	return &inbound.RecipeDTO{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		AuthorID:    entity.AuthorID(),
		Servings:    entity.Servings(),
		Ingredients: ingredientsToDTOs(entity.Ingredients()),
		Tags:        entity.Tags(),
		CreatedAt:   entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   entity.UpdatedAt().Format(time.RFC3339),
	}
}

func ingredientsToDTOs(ings []recipe.Ingredient) []inbound.IngredientDTO {
	dtos := make([]inbound.IngredientDTO, len(ings))
	for i, ing := range ings {
		dtos[i] = inbound.IngredientDTO{
			ID:      ing.ID,
			Name:    ing.Name,
			Amount:  ing.Amount,
			Unit:    ing.Unit,
			Notes:   ing.Notes,
			Display: recipe.FormatIngredient(ing),
		}
	}
	return dtos
}
