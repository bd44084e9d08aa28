package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

//go:generate mockgen -source=links.go -destination=mock_links.go -package=handlers

// LinkLister lists the caller's links.
type LinkLister interface {
	List(ctx context.Context, userID uuid.UUID, filter models.LinkFilter) ([]models.LinkDB, error)
}

// LinkGetter returns a single link of the caller.
type LinkGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.LinkDB, error)
}

// LinkCreator creates a link for the caller.
type LinkCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.LinkInput) (*models.LinkDB, error)
}

// LinkUpdater replaces a link of the caller.
type LinkUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, in models.LinkInput) (*models.LinkDB, error)
}

// LinkDeleter deletes a link of the caller.
type LinkDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

const linkNotFound = "Link not found"

// NewListLinksHandler returns an HTTP handler listing the caller's links.
// @Summary List links
// @Description Returns the links of the authenticated user, newest first, optionally restricted to one category.
// @Tags links
// @Produce json
// @Param category_id query string false "Category id"
// @Success 200 {array} models.LinkDB "Links"
// @Failure 400 {object} models.ErrorResponse "Invalid category_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /links [get]
// @Security BearerAuth
func NewListLinksHandler(svc LinkLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, userIDGetter)
		if !ok {
			return
		}

		var filter models.LinkFilter
		if raw := r.URL.Query().Get("category_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid category_id")
				return
			}
			filter.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}

		links, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			writeServiceError(w, err, linkNotFound)
			return
		}

		writeJSON(w, http.StatusOK, links)
	}
}

// NewGetLinkHandler returns an HTTP handler returning one link.
// @Summary Get link
// @Description Returns a link owned by the caller.
// @Tags links
// @Produce json
// @Param id path string true "Link id"
// @Success 200 {object} models.LinkDB "Link"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Link not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /links/{id} [get]
// @Security BearerAuth
func NewGetLinkHandler(svc LinkGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, ok := resourceIDs(w, r, userIDGetter, linkNotFound)
		if !ok {
			return
		}

		link, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err, linkNotFound)
			return
		}

		writeJSON(w, http.StatusOK, link)
	}
}

// NewCreateLinkHandler returns an HTTP handler creating a link.
// @Summary Create link
// @Description Creates a link, optionally inside one of the caller's categories.
// @Tags links
// @Accept json
// @Produce json
// @Param request body models.LinkRequest true "Link"
// @Success 201 {object} models.LinkDB "Created link"
// @Failure 400 {object} models.ErrorResponse "Title and URL are required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /links [post]
// @Security BearerAuth
func NewCreateLinkHandler(svc LinkCreator, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, userIDGetter)
		if !ok {
			return
		}

		in, ok := decodeLinkRequest(w, r)
		if !ok {
			return
		}

		link, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			writeServiceError(w, err, linkNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, link)
	}
}

// NewUpdateLinkHandler returns an HTTP handler replacing a link.
// @Summary Update link
// @Description Replaces every field of a link owned by the caller. Omitted optional fields are cleared.
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link id"
// @Param request body models.LinkRequest true "Link"
// @Success 200 {object} models.LinkDB "Updated link"
// @Failure 400 {object} models.ErrorResponse "Title and URL are required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Link not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /links/{id} [put]
// @Security BearerAuth
func NewUpdateLinkHandler(svc LinkUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, ok := resourceIDs(w, r, userIDGetter, linkNotFound)
		if !ok {
			return
		}

		in, ok := decodeLinkRequest(w, r)
		if !ok {
			return
		}

		link, err := svc.Update(r.Context(), userID, id, in)
		if err != nil {
			writeServiceError(w, err, linkNotFound)
			return
		}

		writeJSON(w, http.StatusOK, link)
	}
}

// NewDeleteLinkHandler returns an HTTP handler deleting a link.
// @Summary Delete link
// @Description Deletes a link owned by the caller.
// @Tags links
// @Produce json
// @Param id path string true "Link id"
// @Success 200 {object} models.MessageResponse "Link deleted successfully"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Link not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /links/{id} [delete]
// @Security BearerAuth
func NewDeleteLinkHandler(svc LinkDeleter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, ok := resourceIDs(w, r, userIDGetter, linkNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(w, err, linkNotFound)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Link deleted successfully"})
	}
}

// decodeLinkRequest decodes and validates the body. A category id that is not
// a UUID cannot name one of the caller's categories.
func decodeLinkRequest(w http.ResponseWriter, r *http.Request) (models.LinkInput, bool) {
	var req models.LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Infow("failed to decode link request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return models.LinkInput{}, false
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Title and URL are required")
		return models.LinkInput{}, false
	}

	in := models.LinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	}

	if req.CategoryID != nil && strings.TrimSpace(*req.CategoryID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.CategoryID))
		if err != nil {
			writeError(w, http.StatusBadRequest, categoryNotFound)
			return models.LinkInput{}, false
		}
		in.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
	}

	return in, true
}
