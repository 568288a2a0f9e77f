// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ladlehq/ladle/internal/domain/recipe"
	"github.com/ladlehq/ladle/internal/ports/inbound"
	"github.com/ladlehq/ladle/internal/ports/outbound"
	"github.com/ladlehq/ladle/pkg/errors"
)

const recipeCacheTTL = time.Hour

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	userRepo   outbound.UserRepository
	cache      outbound.CacheRepository
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	userRepo outbound.UserRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		cache:      cache,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating new recipe",
		zap.String("title", cmd.Title),
		zap.String("author_id", cmd.AuthorID.String()),
	)

	exists, err := s.userRepo.Exists(ctx, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewDatabaseError("check user existence", err)
	}
	if !exists {
		return nil, errors.NewUserNotFoundError(cmd.AuthorID.String())
	}

	entity, err := recipe.NewRecipe(cmd.Title, cmd.Description, cmd.AuthorID, cmd.Servings)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, ingCmd := range cmd.Ingredients {
		ing := recipe.Ingredient{
			ID:     uuid.New(),
			Name:   ingCmd.Name,
			Amount: ingCmd.Amount,
			Unit:   ingCmd.Unit,
			Notes:  ingCmd.Notes,
		}
		if err := entity.AddIngredient(ing); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if len(cmd.Tags) > 0 {
		entity.SetTags(cmd.Tags)
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.logEvents(entity)

	dto := entityToDTO(entity)

	s.logger.Info("Recipe created successfully",
		zap.String("recipe_id", dto.ID.String()),
		zap.String("title", dto.Title),
	)

	return dto, nil
}

// UpdateRecipe updates an existing recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Updating recipe",
		zap.String("recipe_id", cmd.RecipeID.String()),
		zap.String("user_id", cmd.UserID.String()),
	)

	entity, err := s.loadOwnedRecipe(ctx, cmd.RecipeID, cmd.UserID, "update this recipe")
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := entity.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := entity.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Ingredients != nil {
		ings := make([]recipe.Ingredient, len(*cmd.Ingredients))
		for i, ingCmd := range *cmd.Ingredients {
			ings[i] = recipe.Ingredient{
				ID:     uuid.New(),
				Name:   ingCmd.Name,
				Amount: ingCmd.Amount,
				Unit:   ingCmd.Unit,
				Notes:  ingCmd.Notes,
			}
		}
		if err := entity.ReplaceIngredients(ings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Tags != nil {
		entity.SetTags(*cmd.Tags)
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.logEvents(entity)
	s.invalidateRecipeCache(ctx, cmd.RecipeID)

	return entityToDTO(entity), nil
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	s.logger.Info("Deleting recipe",
		zap.String("recipe_id", recipeID.String()),
		zap.String("user_id", userID.String()),
	)

	if _, err := s.loadOwnedRecipe(ctx, recipeID, userID, "delete this recipe"); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.invalidateRecipeCache(ctx, recipeID)
	return nil
}

// RescaleRecipe permanently rewrites a recipe's base serving count. The
// transient preview path is ScaleRecipe; this is the write path the user
// reaches through the "save rescaled recipe" action.
func (s *RecipeService) RescaleRecipe(ctx context.Context, recipeID, userID uuid.UUID, servings int) (*inbound.RecipeDTO, error) {
	s.logger.Info("Rescaling recipe",
		zap.String("recipe_id", recipeID.String()),
		zap.Int("servings", servings),
	)

	entity, err := s.loadOwnedRecipe(ctx, recipeID, userID, "rescale this recipe")
	if err != nil {
		return nil, err
	}

	if err := entity.Rescale(servings); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("rescale recipe", err)
	}

	s.logEvents(entity)
	s.invalidateRecipeCache(ctx, recipeID)

	return entityToDTO(entity), nil
}

// GetRecipeByID retrieves a recipe by ID
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	if cached := s.getCachedRecipe(ctx, recipeID); cached != nil {
		return cached, nil
	}

	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	dto := entityToDTO(entity)
	s.cacheRecipe(ctx, dto)
	return dto, nil
}

// GetRecipesByAuthor retrieves recipes by author with pagination
func (s *RecipeService) GetRecipesByAuthor(ctx context.Context, authorID uuid.UUID, params inbound.PaginationParams) (*inbound.RecipeList, error) {
	exists, err := s.userRepo.Exists(ctx, authorID)
	if err != nil {
		return nil, errors.NewDatabaseError("check user existence", err)
	}
	if !exists {
		return nil, errors.NewUserNotFoundError(authorID.String())
	}

	if params.PageSize < 1 {
		params.PageSize = 20
	}
	if params.Page < 1 {
		params.Page = 1
	}

	offset := (params.Page - 1) * params.PageSize
	recipes, total, err := s.recipeRepo.FindByAuthorID(ctx, authorID, offset, params.PageSize)
	if err != nil {
		return nil, errors.NewDatabaseError("find author recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = *entityToDTO(r)
	}

	return &inbound.RecipeList{
		Recipes:    dtos,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: (total + params.PageSize - 1) / params.PageSize,
	}, nil
}

// ScaleRecipe computes a scale preview without persisting anything. The
// serving bound is validated here, before the pure scaling core runs.
func (s *RecipeService) ScaleRecipe(ctx context.Context, recipeID uuid.UUID, servings int) (*inbound.ScalePreview, error) {
	if servings < recipe.MinServings || servings > recipe.MaxServings {
		return nil, errors.NewValidationError(
			fmt.Sprintf("servings must be between %d and %d", recipe.MinServings, recipe.MaxServings),
		)
	}

	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	scaled := entity.Scale(servings)

	return &inbound.ScalePreview{
		RecipeID:       entity.ID(),
		BaseServings:   entity.Servings(),
		TargetServings: servings,
		Ratio:          float64(servings) / float64(entity.Servings()),
		Original:       ingredientsToDTOs(entity.Ingredients()),
		Scaled:         ingredientsToDTOs(scaled.Ingredients()),
	}, nil
}

// Helper methods

func (s *RecipeService) findRecipe(ctx context.Context, recipeID uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if err == recipe.ErrRecipeNotFound {
			return nil, errors.NewRecipeNotFoundError(recipeID.String())
		}
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return entity, nil
}

func (s *RecipeService) loadOwnedRecipe(ctx context.Context, recipeID, userID uuid.UUID, action string) (*recipe.Recipe, error) {
	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if entity.AuthorID() != userID {
		return nil, errors.NewInsufficientPermissionsError(action)
	}
	return entity, nil
}

// logEvents drains and logs pending domain events.
func (s *RecipeService) logEvents(entity *recipe.Recipe) {
	for _, event := range entity.Events() {
		s.logger.Info("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

// Cache operations. Cache failures are logged and ignored: the repository
// remains the source of truth.

func recipeCacheKey(recipeID uuid.UUID) string {
	return fmt.Sprintf("recipe:%s", recipeID.String())
}

func (s *RecipeService) getCachedRecipe(ctx context.Context, recipeID uuid.UUID) *inbound.RecipeDTO {
	data, err := s.cache.Get(ctx, recipeCacheKey(recipeID))
	if err != nil || len(data) == 0 {
		return nil
	}

	var dto inbound.RecipeDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		s.logger.Warn("Discarding undecodable cached recipe",
			zap.String("recipe_id", recipeID.String()),
			zap.Error(err),
		)
		return nil
	}
	return &dto
}

func (s *RecipeService) cacheRecipe(ctx context.Context, dto *inbound.RecipeDTO) {
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, recipeCacheKey(dto.ID), data, recipeCacheTTL); err != nil {
		s.logger.Warn("Failed to cache recipe",
			zap.String("recipe_id", dto.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *RecipeService) invalidateRecipeCache(ctx context.Context, recipeID uuid.UUID) {
	if err := s.cache.Delete(ctx, recipeCacheKey(recipeID)); err != nil {
		s.logger.Warn("Failed to invalidate recipe cache",
			zap.String("recipe_id", recipeID.String()),
			zap.Error(err),
		)
	}
}
