package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ladlehq/ladle/internal/infrastructure/http/middleware"
	"github.com/ladlehq/ladle/internal/ports/inbound"
	"github.com/ladlehq/ladle/pkg/errors"
)

// RecipeHandlers handles recipe REST API requests
type RecipeHandlers struct {
	recipeService inbound.RecipeService
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService: recipeService,
		validate:      validator.New(),
		logger:        logger,
	}
}

// ingredientRequest is one ingredient line in a recipe payload. Amount is
// optional so "to taste" ingredients can be sent without a quantity.
type ingredientRequest struct {
	Name   string   `json:"name" validate:"required,max=200"`
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Unit   string   `json:"unit" validate:"max=50"`
	Notes  string   `json:"notes" validate:"max=500"`
}

type createRecipeRequest struct {
	Title       string              `json:"title" validate:"required,min=3,max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Servings    int                 `json:"servings" validate:"required,min=1,max=100"`
	Ingredients []ingredientRequest `json:"ingredients" validate:"dive"`
	Tags        []string            `json:"tags" validate:"max=20,dive,max=50"`
}

type updateRecipeRequest struct {
	Title       *string              `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string              `json:"description" validate:"omitempty,max=2000"`
	Ingredients *[]ingredientRequest `json:"ingredients" validate:"omitempty,dive"`
	Tags        *[]string            `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

// scaleRequest carries the target serving count for scale and rescale
// operations. The 1..100 bound is enforced here, at the trust boundary.
type scaleRequest struct {
	Servings int `json:"servings" validate:"required,min=1,max=100"`
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	var req createRecipeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	dto, err := h.recipeService.CreateRecipe(r.Context(), inbound.CreateRecipeCommand{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    userID,
		Servings:    req.Servings,
		Ingredients: toIngredientCommands(req.Ingredients),
		Tags:        req.Tags,
	})
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, dto)
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := h.recipeID(r)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	dto, err := h.recipeService.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// ListRecipes handles GET /api/v1/recipes for the authenticated author
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	params := inbound.PaginationParams{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 20),
	}

	list, err := h.recipeService.GetRecipesByAuthor(r.Context(), userID, params)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *RecipeHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := h.recipeID(r)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	var req updateRecipeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	cmd := inbound.UpdateRecipeCommand{
		RecipeID:    recipeID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if req.Ingredients != nil {
		ingredients := toIngredientCommands(*req.Ingredients)
		cmd.Ingredients = &ingredients
	}

	dto, err := h.recipeService.UpdateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *RecipeHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := h.recipeID(r)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), recipeID, userID); err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ScaleRecipe handles POST /api/v1/recipes/{id}/scale. It returns a
// transient preview of the recipe at the requested serving count without
// persisting anything.
func (h *RecipeHandlers) ScaleRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := h.recipeID(r)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	var req scaleRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	preview, err := h.recipeService.ScaleRecipe(r.Context(), recipeID, req.Servings)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, preview)
}

// RescaleRecipe handles POST /api/v1/recipes/{id}/rescale. Unlike scale,
// this permanently rewrites the stored amounts for the new serving count.
func (h *RecipeHandlers) RescaleRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := h.recipeID(r)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	var req scaleRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	dto, err := h.recipeService.RescaleRecipe(r.Context(), recipeID, userID, req.Servings)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// decodeAndValidate decodes a JSON body and runs struct validation
func (h *RecipeHandlers) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("Invalid JSON body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// recipeID parses the {id} URL parameter
func (h *RecipeHandlers) recipeID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("Invalid recipe ID")
	}
	return id, nil
}

func toIngredientCommands(reqs []ingredientRequest) []inbound.IngredientCommand {
	cmds := make([]inbound.IngredientCommand, len(reqs))
	for i, req := range reqs {
		cmds[i] = inbound.IngredientCommand{
			Name:   req.Name,
			Amount: req.Amount,
			Unit:   req.Unit,
			Notes:  req.Notes,
		}
	}
	return cmds
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
