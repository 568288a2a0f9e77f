// Package recipe contains the core domain logic for recipe management.
// The scaling and quantity-formatting functions in this package are pure:
// they never touch the database, the network, or shared state.
package recipe

import (
	"time"

	"github.com/google/uuid"

	"github.com/ladlehq/ladle/internal/domain/shared"
)

// Recipe is the aggregate root for a stored recipe. Ingredient amounts are
// correct for the base serving count held in servings; Scale derives copies
// for other serving counts without touching the original.
type Recipe struct {
	id      uuid.UUID
	version int64 // Optimistic locking

	title       string
	description string
	authorID    uuid.UUID

	servings    int
	ingredients []Ingredient
	tags        []string

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewRecipe creates a new Recipe with validation.
func NewRecipe(title, description string, authorID uuid.UUID, servings int) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if servings < MinServings || servings > MaxServings {
		return nil, ErrInvalidServings
	}

	now := time.Now()
	r := &Recipe{
		id:          uuid.New(),
		version:     1,
		title:       title,
		description: description,
		authorID:    authorID,
		servings:    servings,
		createdAt:   now,
		updatedAt:   now,
		events:      []shared.DomainEvent{},
	}

	r.addEvent(RecipeCreatedEvent{
		RecipeID:  r.id,
		AuthorID:  authorID,
		Title:     title,
		CreatedAt: now,
	})

	return r, nil
}

// Restore rebuilds a Recipe from persisted state. It bypasses creation
// events and is intended for repository mappers only.
func Restore(
	id uuid.UUID,
	version int64,
	title, description string,
	authorID uuid.UUID,
	servings int,
	ingredients []Ingredient,
	tags []string,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:          id,
		version:     version,
		title:       title,
		description: description,
		authorID:    authorID,
		servings:    servings,
		ingredients: ingredients,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		events:      []shared.DomainEvent{},
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Version returns the recipe's version
func (r *Recipe) Version() int64 {
	return r.version
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// AuthorID returns the recipe's author ID
func (r *Recipe) AuthorID() uuid.UUID {
	return r.authorID
}

// Servings returns the base serving count the stored amounts are correct for.
func (r *Recipe) Servings() int {
	return r.servings
}

// Ingredients returns the recipe's ingredients in display order.
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// Tags returns the recipe's tags
func (r *Recipe) Tags() []string {
	return r.tags
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// UpdateTitle updates the recipe title with validation
func (r *Recipe) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	oldTitle := r.title
	r.title = title
	r.updatedAt = time.Now()

	r.addEvent(RecipeTitleUpdatedEvent{
		RecipeID:  r.id,
		OldTitle:  oldTitle,
		NewTitle:  title,
		UpdatedAt: r.updatedAt,
	})

	return nil
}

// UpdateDescription updates the recipe description with validation
func (r *Recipe) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}

	r.description = description
	r.updatedAt = time.Now()
	return nil
}

// AddIngredient appends a new ingredient to the recipe.
func (r *Recipe) AddIngredient(ingredient Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	r.ingredients = append(r.ingredients, ingredient)
	r.updatedAt = time.Now()

	r.addEvent(IngredientAddedEvent{
		RecipeID:     r.id,
		IngredientID: ingredient.ID,
		AddedAt:      r.updatedAt,
	})

	return nil
}

// RemoveIngredient removes an ingredient by ID. Removing an unknown ID
// is not an error; display order of the remainder is preserved.
func (r *Recipe) RemoveIngredient(ingredientID uuid.UUID) {
	for i, ing := range r.ingredients {
		if ing.ID == ingredientID {
			r.ingredients = append(r.ingredients[:i], r.ingredients[i+1:]...)
			r.updatedAt = time.Now()
			return
		}
	}
}

// ReplaceIngredients swaps the full ingredient list, validating every entry
// before any mutation takes effect.
func (r *Recipe) ReplaceIngredients(ingredients []Ingredient) error {
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}

	r.ingredients = ingredients
	r.updatedAt = time.Now()
	return nil
}

// SetTags replaces the recipe's tags
func (r *Recipe) SetTags(tags []string) {
	r.tags = tags
	r.updatedAt = time.Now()
}

// addEvent adds a domain event to be dispatched
func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// Events returns and clears pending domain events
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = []shared.DomainEvent{}
	return events
}

// validateTitle validates recipe title
func validateTitle(title string) error {
	if len(title) < 3 {
		return ErrTitleTooShort
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}

// validateDescription validates recipe description
func validateDescription(description string) error {
	if len(description) > 2000 {
		return ErrDescriptionTooLong
	}
	return nil
}
