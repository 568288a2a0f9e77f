// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/ladlehq/ladle/internal/domain/recipe"
	"github.com/ladlehq/ladle/internal/domain/user"
)

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// ValidRecipe creates a valid recipe with a mix of measured and
// unmeasured ingredients. Units are kept grammatically consistent with
// the drawn amount, as they would be in stored data.
func (f *RecipeFactory) ValidRecipe() *recipe.Recipe {
	cups := float64(f.faker.Number(1, 4))
	ingredients := []recipe.Ingredient{
		{
			ID:     uuid.New(),
			Name:   f.faker.Vegetable(),
			Amount: recipe.Amt(cups),
			Unit:   recipe.PluralizeUnit("cup", cups),
		},
		{
			ID:     uuid.New(),
			Name:   f.faker.Fruit(),
			Amount: recipe.Amt(0.5),
			Unit:   "tsp",
		},
		{
			ID:    uuid.New(),
			Name:  "salt",
			Notes: "to taste",
		},
	}
	return f.RecipeWithIngredients(4, ingredients...)
}

// RecipeWithIngredients creates a recipe whose ingredients are taken
// verbatim, without running entity validation. Tests use this to build
// recipes holding states that would be rejected at the write path.
func (f *RecipeFactory) RecipeWithIngredients(servings int, ingredients ...recipe.Ingredient) *recipe.Recipe {
	now := time.Now()
	return recipe.Restore(
		uuid.New(),
		1,
		fmt.Sprintf("%s %s", f.faker.AdjectiveDescriptive(), f.faker.Dinner()),
		f.faker.Sentence(8),
		uuid.New(),
		servings,
		ingredients,
		[]string{"test"},
		now,
		now,
	)
}

// UserFactory provides methods to create test user profiles
type UserFactory struct {
	faker *gofakeit.Faker
}

// NewUserFactory creates a new user factory with seeded faker
func NewUserFactory(seed int64) *UserFactory {
	return &UserFactory{
		faker: gofakeit.New(seed),
	}
}

// ValidUser creates a valid user profile
func (f *UserFactory) ValidUser() *user.User {
	u, err := user.NewUser(uuid.New(), f.faker.Email(), f.faker.Name())
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid user: %v", err))
	}
	return u
}
