// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for recipe management
// This is the primary port that HTTP handlers and other driving adapters use
type RecipeService interface {
	// Commands - operations that modify state
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error

	// RescaleRecipe permanently rewrites a recipe's base serving count,
	// persisting proportionally scaled ingredient amounts.
	RescaleRecipe(ctx context.Context, recipeID, userID uuid.UUID, servings int) (*RecipeDTO, error)

	// Queries - operations that read state
	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	GetRecipesByAuthor(ctx context.Context, authorID uuid.UUID, params PaginationParams) (*RecipeList, error)

	// ScaleRecipe computes a transient scale preview: the stored recipe and
	// a copy adjusted to the target serving count, side by side. Nothing is
	// persisted.
	ScaleRecipe(ctx context.Context, recipeID uuid.UUID, servings int) (*ScalePreview, error)
}

// Command objects for operations

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	Title       string
	Description string
	AuthorID    uuid.UUID
	Servings    int
	Ingredients []IngredientCommand
	Tags        []string
}

// UpdateRecipeCommand contains data for updating a recipe.
// Nil pointer fields are left unchanged.
type UpdateRecipeCommand struct {
	RecipeID    uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Description *string
	Ingredients *[]IngredientCommand
	Tags        *[]string
}

// IngredientCommand carries one ingredient line. A nil Amount means the
// ingredient has no numeric quantity ("to taste").
type IngredientCommand struct {
	Name   string
	Amount *float64
	Unit   string
	Notes  string
}

// PaginationParams for paginated queries
type PaginationParams struct {
	Page     int
	PageSize int
}

// Response DTOs

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AuthorID    uuid.UUID       `json:"author_id"`
	Servings    int             `json:"servings"`
	Ingredients []IngredientDTO `json:"ingredients"`
	Tags        []string        `json:"tags"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// IngredientDTO carries one ingredient plus its ready-to-render display
// string ("1 ½ cups flour (sifted)").
type IngredientDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Amount  *float64  `json:"amount"`
	Unit    string    `json:"unit,omitempty"`
	Notes   string    `json:"notes,omitempty"`
	Display string    `json:"display"`
}

// ScalePreview pairs a recipe's stored ingredient list with a copy scaled
// to a target serving count, for side-by-side rendering.
type ScalePreview struct {
	RecipeID       uuid.UUID       `json:"recipe_id"`
	BaseServings   int             `json:"base_servings"`
	TargetServings int             `json:"target_servings"`
	Ratio          float64         `json:"ratio"`
	Original       []IngredientDTO `json:"original"`
	Scaled         []IngredientDTO `json:"scaled"`
}

// RecipeList for paginated results
type RecipeList struct {
	Recipes    []RecipeDTO `json:"recipes"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
