package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

//go:generate mockgen -source=category.go -destination=mock_category.go -package=services

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.CategoryDB, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	Save(ctx context.Context, category *models.CategoryDB) error
	Update(ctx context.Context, category *models.CategoryDB) (*models.CategoryDB, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ResourceCache caches per-user listings. Misses and failures look the same.
// Get returns a version that Set must be given, so a listing read before an
// invalidation is never stored after it.
type ResourceCache interface {
	GetCategories(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, int64, bool)
	SetCategories(ctx context.Context, userID uuid.UUID, version int64, categories []models.CategoryDB)
	GetLinks(ctx context.Context, userID uuid.UUID, filter string) ([]models.LinkDB, int64, bool)
	SetLinks(ctx context.Context, userID uuid.UUID, filter string, version int64, links []models.LinkDB)
	InvalidateCategories(ctx context.Context, userID uuid.UUID)
	InvalidateLinks(ctx context.Context, userID uuid.UUID)
}

// CategoryService implements owner-scoped category operations.
type CategoryService struct {
	reader    CategoryReader
	writer    CategoryWriter
	cache     ResourceCache
	publisher Publisher
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader CategoryReader, writer CategoryWriter, cache ResourceCache, publisher Publisher) *CategoryService {
	return &CategoryService{
		reader:    reader,
		writer:    writer,
		cache:     cache,
		publisher: publisher,
	}
}

// List returns the user's categories, newest first.
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error) {
	categories, version, ok := s.cache.GetCategories(ctx, userID)
	if ok {
		return categories, nil
	}

	categories, err := s.reader.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "user_id", userID, "error", err)
		return nil, err
	}

	s.cache.SetCategories(ctx, userID, version, categories)
	return categories, nil
}

// Create stores a new category. An empty color falls back to the default.
func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, name, color string) (*models.CategoryDB, error) {
	name, color, err := normalizeCategory(name, color)
	if err != nil {
		return nil, err
	}

	category := &models.CategoryDB{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, category); err != nil {
		logger.Log.Errorw("failed to save category", "user_id", userID, "error", err)
		return nil, err
	}

	s.cache.InvalidateCategories(ctx, userID)
	s.publisher.Publish(ctx, newEvent(userID, models.ResourceCategory, models.ActionCreated, category.ID))

	return category, nil
}

// Update replaces name and color of one of the user's categories.
func (s *CategoryService) Update(ctx context.Context, userID, id uuid.UUID, name, color string) (*models.CategoryDB, error) {
	name, color, err := normalizeCategory(name, color)
	if err != nil {
		return nil, err
	}

	category, err := s.writer.Update(ctx, &models.CategoryDB{
		ID:     id,
		UserID: userID,
		Name:   name,
		Color:  color,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update category", "user_id", userID, "category_id", id, "error", err)
		return nil, err
	}

	s.cache.InvalidateCategories(ctx, userID)
	s.publisher.Publish(ctx, newEvent(userID, models.ResourceCategory, models.ActionUpdated, id))

	return category, nil
}

// Delete removes one of the user's categories. Links that referenced it become uncategorized.
func (s *CategoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.writer.Delete(ctx, userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete category", "user_id", userID, "category_id", id, "error", err)
		return err
	}

	s.cache.InvalidateCategories(ctx, userID)
	s.cache.InvalidateLinks(ctx, userID)
	s.publisher.Publish(ctx, newEvent(userID, models.ResourceCategory, models.ActionDeleted, id))

	return nil
}

func normalizeCategory(name, color string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", newValidationError("Category name is required")
	}

	color = strings.TrimSpace(color)
	if color == "" {
		color = models.DefaultCategoryColor
	}
	return name, color, nil
}
