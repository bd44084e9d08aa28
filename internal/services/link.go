package services

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

//go:generate mockgen -source=link.go -destination=mock_link.go -package=services

// LinkReader defines read operations for links.
type LinkReader interface {
	List(ctx context.Context, userID uuid.UUID, filter models.LinkFilter) ([]models.LinkDB, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.LinkDB, error)
}

// LinkWriter defines write operations for links.
type LinkWriter interface {
	Save(ctx context.Context, link *models.LinkDB) error
	Update(ctx context.Context, link *models.LinkDB) (*models.LinkDB, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryGetter looks up a single category of a user.
type CategoryGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.CategoryDB, error)
}

// LinkService implements owner-scoped link operations.
type LinkService struct {
	reader     LinkReader
	writer     LinkWriter
	categories CategoryGetter
	cache      ResourceCache
	publisher  Publisher
}

// NewLinkService creates a new LinkService.
func NewLinkService(
	reader LinkReader,
	writer LinkWriter,
	categories CategoryGetter,
	cache ResourceCache,
	publisher Publisher,
) *LinkService {
	return &LinkService{
		reader:     reader,
		writer:     writer,
		categories: categories,
		cache:      cache,
		publisher:  publisher,
	}
}

// List returns the user's links, newest first, optionally for a single category.
func (s *LinkService) List(ctx context.Context, userID uuid.UUID, filter models.LinkFilter) ([]models.LinkDB, error) {
	links, version, ok := s.cache.GetLinks(ctx, userID, filter.Key())
	if ok {
		return links, nil
	}

	links, err := s.reader.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list links", "user_id", userID, "filter", filter.Key(), "error", err)
		return nil, err
	}

	s.cache.SetLinks(ctx, userID, filter.Key(), version, links)
	return links, nil
}

// Get returns one of the user's links.
func (s *LinkService) Get(ctx context.Context, userID, id uuid.UUID) (*models.LinkDB, error) {
	link, err := s.reader.Get(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get link", "user_id", userID, "link_id", id, "error", err)
		return nil, err
	}
	if link == nil {
		return nil, ErrNotFound
	}
	return link, nil
}

// Create stores a new link.
func (s *LinkService) Create(ctx context.Context, userID uuid.UUID, in models.LinkInput) (*models.LinkDB, error) {
	in, err := s.validate(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	link := &models.LinkDB{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.writer.Save(ctx, link); err != nil {
		logger.Log.Errorw("failed to save link", "user_id", userID, "error", err)
		return nil, err
	}

	s.cache.InvalidateLinks(ctx, userID)
	s.publisher.Publish(ctx, newEvent(userID, models.ResourceLink, models.ActionCreated, link.ID))

	return link, nil
}

// Update replaces every mutable field of one of the user's links.
func (s *LinkService) Update(ctx context.Context, userID, id uuid.UUID, in models.LinkInput) (*models.LinkDB, error) {
	in, err := s.validate(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	link, err := s.writer.Update(ctx, &models.LinkDB{
		ID:          id,
		UserID:      userID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		UpdatedAt:   time.Now().UTC(),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update link", "user_id", userID, "link_id", id, "error", err)
		return nil, err
	}

	s.cache.InvalidateLinks(ctx, userID)
	s.publisher.Publish(ctx, newEvent(userID, models.ResourceLink, models.ActionUpdated, id))

	return link, nil
}

// Delete removes one of the user's links.
func (s *LinkService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.writer.Delete(ctx, userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete link", "user_id", userID, "link_id", id, "error", err)
		return err
	}

	s.cache.InvalidateLinks(ctx, userID)
	s.publisher.Publish(ctx, newEvent(userID, models.ResourceLink, models.ActionDeleted, id))

	return nil
}

// validate trims the input, checks required fields and the URL, and makes
// sure a referenced category belongs to the user.
func (s *LinkService) validate(ctx context.Context, userID uuid.UUID, in models.LinkInput) (models.LinkInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	if in.Title == "" || in.URL == "" {
		return in, newValidationError("Title and URL are required")
	}

	if !IsAbsoluteURL(in.URL) {
		return in, newValidationError("URL must be absolute")
	}

	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		in.Description = nil
	}

	if in.CategoryID.Valid {
		category, err := s.categories.Get(ctx, userID, in.CategoryID.UUID)
		if err != nil {
			logger.Log.Errorw("failed to get category", "user_id", userID, "category_id", in.CategoryID.UUID, "error", err)
			return in, err
		}
		if category == nil {
			return in, newValidationError("Category not found")
		}
	}

	return in, nil
}

// IsAbsoluteURL reports whether raw has a scheme and a host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
