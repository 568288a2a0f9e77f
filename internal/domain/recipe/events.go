package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the recipe domain

// RecipeCreatedEvent is raised when a new recipe is created
type RecipeCreatedEvent struct {
	RecipeID  uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	CreatedAt time.Time
}

func (e RecipeCreatedEvent) EventName() string {
	return "recipe.created"
}

func (e RecipeCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// RecipeTitleUpdatedEvent is raised when a recipe title is updated
type RecipeTitleUpdatedEvent struct {
	RecipeID  uuid.UUID
	OldTitle  string
	NewTitle  string
	UpdatedAt time.Time
}

func (e RecipeTitleUpdatedEvent) EventName() string {
	return "recipe.title.updated"
}

func (e RecipeTitleUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// IngredientAddedEvent is raised when an ingredient is added to a recipe
type IngredientAddedEvent struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	AddedAt      time.Time
}

func (e IngredientAddedEvent) EventName() string {
	return "recipe.ingredient.added"
}

func (e IngredientAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// RecipeRescaledEvent is raised when a recipe's base serving count is
// permanently rewritten (as opposed to a transient scale preview).
type RecipeRescaledEvent struct {
	RecipeID    uuid.UUID
	OldServings int
	NewServings int
	RescaledAt  time.Time
}

func (e RecipeRescaledEvent) EventName() string {
	return "recipe.rescaled"
}

func (e RecipeRescaledEvent) OccurredAt() time.Time {
	return e.RescaledAt
}
