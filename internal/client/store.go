package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

// Store is the typed entry point of the data layer: reads go through the
// query cache and writes invalidate it.
type Store struct {
	api     *APIClient
	cache   *QueryCache
	session *Session
}

// NewStore combines an API client, its session and a cache.
func NewStore(api *APIClient, cache *QueryCache, session *Session) *Store {
	return &Store{api: api, cache: cache, session: session}
}

// Session returns the session the store authenticates with.
func (s *Store) Session() *Session {
	return s.session
}

// Cache returns the underlying query cache.
func (s *Store) Cache() *QueryCache {
	return s.cache
}

// Categories returns the caller's categories, newest first.
func (s *Store) Categories(ctx context.Context) ([]models.CategoryDB, error) {
	return Query(ctx, s.cache, Key{Kind: KindCategories}, s.api.ListCategories)
}

// Links returns the caller's links for filter.
func (s *Store) Links(ctx context.Context, filter models.LinkFilter) ([]models.LinkDB, error) {
	key := Key{Kind: KindLinks}
	if filter.CategoryID.Valid {
		key.Filter = filter.Key()
	}
	return Query(ctx, s.cache, key, func(ctx context.Context) ([]models.LinkDB, error) {
		return s.api.ListLinks(ctx, filter)
	})
}

// Link returns a single link.
func (s *Store) Link(ctx context.Context, id uuid.UUID) (*models.LinkDB, error) {
	return Query(ctx, s.cache, Key{Kind: KindLink, Filter: id.String()}, func(ctx context.Context) (*models.LinkDB, error) {
		return s.api.GetLink(ctx, id)
	})
}

// CreateCategory creates a category.
func (s *Store) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.CategoryDB, error) {
	return Mutate(ctx, s.cache, MutationCreateCategory, func(ctx context.Context) (*models.CategoryDB, error) {
		return s.api.CreateCategory(ctx, req)
	})
}

// UpdateCategory replaces a category's name and color.
func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.CategoryDB, error) {
	return Mutate(ctx, s.cache, MutationUpdateCategory, func(ctx context.Context) (*models.CategoryDB, error) {
		return s.api.UpdateCategory(ctx, id, req)
	})
}

// DeleteCategory deletes a category.
func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := Mutate(ctx, s.cache, MutationDeleteCategory, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteCategory(ctx, id)
	})
	return err
}

// CreateLink creates a link.
func (s *Store) CreateLink(ctx context.Context, req models.LinkRequest) (*models.LinkDB, error) {
	return Mutate(ctx, s.cache, MutationCreateLink, func(ctx context.Context) (*models.LinkDB, error) {
		return s.api.CreateLink(ctx, req)
	})
}

// UpdateLink replaces every field of a link.
func (s *Store) UpdateLink(ctx context.Context, id uuid.UUID, req models.LinkRequest) (*models.LinkDB, error) {
	return Mutate(ctx, s.cache, MutationUpdateLink, func(ctx context.Context) (*models.LinkDB, error) {
		return s.api.UpdateLink(ctx, id, req)
	})
}

// DeleteLink deletes a link.
func (s *Store) DeleteLink(ctx context.Context, id uuid.UUID) error {
	_, err := Mutate(ctx, s.cache, MutationDeleteLink, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteLink(ctx, id)
	})
	return err
}

// Register creates an account and starts a session for it.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, s.begin(resp)
}

// Login starts a session.
func (s *Store) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, s.begin(resp)
}

// Logout ends the session and drops every cached resource.
func (s *Store) Logout() error {
	s.cache.Clear()
	return s.session.End()
}

// Reset drops cached state after the session expired.
func (s *Store) Reset() {
	s.cache.Clear()
}

func (s *Store) begin(resp *models.AuthResponse) error {
	s.cache.Clear()
	if err := s.session.Start(resp); err != nil {
		logger.Log.Errorw("failed to persist session", "error", err)
		return err
	}
	return nil
}
