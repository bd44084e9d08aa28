package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

//go:generate mockgen -source=categories.go -destination=mock_categories.go -package=handlers

// CategoryLister lists the caller's categories.
type CategoryLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error)
}

// CategoryCreator creates a category for the caller.
type CategoryCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name, color string) (*models.CategoryDB, error)
}

// CategoryUpdater replaces a category of the caller.
type CategoryUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, name, color string) (*models.CategoryDB, error)
}

// CategoryDeleter deletes a category of the caller.
type CategoryDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

const categoryNotFound = "Category not found"

var categoryMessages = map[string]string{
	"Name.required": "Category name is required",
	"Name.max":      "Category name is too long",
	"Color":         "Color must be a hex color such as #3b82f6",
}

// NewListCategoriesHandler returns an HTTP handler listing the caller's categories.
// @Summary List categories
// @Description Returns every category of the authenticated user, newest first.
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB "Categories"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /categories [get]
// @Security BearerAuth
func NewListCategoriesHandler(svc CategoryLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, userIDGetter)
		if !ok {
			return
		}

		categories, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, categoryNotFound)
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}

// NewCreateCategoryHandler returns an HTTP handler creating a category.
// @Summary Create category
// @Description Creates a category. The color defaults to #3b82f6.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category"
// @Success 201 {object} models.CategoryDB "Created category"
// @Failure 400 {object} models.ErrorResponse "Category name is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /categories [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc CategoryCreator, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, userIDGetter)
		if !ok {
			return
		}

		req, ok := decodeCategoryRequest(w, r)
		if !ok {
			return
		}

		category, err := svc.Create(r.Context(), userID, req.Name, req.Color)
		if err != nil {
			writeServiceError(w, err, categoryNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}

// NewUpdateCategoryHandler returns an HTTP handler replacing a category.
// @Summary Update category
// @Description Replaces name and color of a category owned by the caller. An empty color resets it to the default.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param request body models.CategoryRequest true "Category"
// @Success 200 {object} models.CategoryDB "Updated category"
// @Failure 400 {object} models.ErrorResponse "Category name is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Category not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /categories/{id} [put]
// @Security BearerAuth
func NewUpdateCategoryHandler(svc CategoryUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, ok := resourceIDs(w, r, userIDGetter, categoryNotFound)
		if !ok {
			return
		}

		req, ok := decodeCategoryRequest(w, r)
		if !ok {
			return
		}

		category, err := svc.Update(r.Context(), userID, id, req.Name, req.Color)
		if err != nil {
			writeServiceError(w, err, categoryNotFound)
			return
		}

		writeJSON(w, http.StatusOK, category)
	}
}

// NewDeleteCategoryHandler returns an HTTP handler deleting a category.
// @Summary Delete category
// @Description Deletes a category owned by the caller. Its links are kept and become uncategorized.
// @Tags categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} models.MessageResponse "Category deleted successfully"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Category not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /categories/{id} [delete]
// @Security BearerAuth
func NewDeleteCategoryHandler(svc CategoryDeleter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, ok := resourceIDs(w, r, userIDGetter, categoryNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(w, err, categoryNotFound)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Category deleted successfully"})
	}
}

func decodeCategoryRequest(w http.ResponseWriter, r *http.Request) (models.CategoryRequest, bool) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Infow("failed to decode category request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err, categoryMessages, "Invalid request body"))
		return req, false
	}
	return req, true
}
