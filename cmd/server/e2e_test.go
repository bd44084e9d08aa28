package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/jwt"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/repositories"
	"github.com/sbilibin2017/linkvault/internal/services"
	"github.com/sbilibin2017/linkvault/internal/storage"
)

// newTestServer serves the real router over a private in-memory sqlite
// database with the cache and event publishing disabled.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := storage.Open(context.Background(), storage.DriverSQLite, dsn, storage.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour))
	router := newRouter(db, repositories.NewResourceCacheRepository(nil, time.Minute), services.NewEventPublisher(nil), tokens)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type apiResponse struct {
	status int
	body   []byte
}

func (r apiResponse) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), string(r.body))
}

func (r apiResponse) errorMessage(t *testing.T) string {
	t.Helper()
	var e models.ErrorResponse
	r.decode(t, &e)
	return e.Error
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) apiResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return apiResponse{status: resp.StatusCode, body: out.Bytes()}
}

func register(t *testing.T, srv *httptest.Server, username string) models.AuthResponse {
	t.Helper()

	resp := call(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))

	var auth models.AuthResponse
	resp.decode(t, &auth)
	return auth
}

func createCategory(t *testing.T, srv *httptest.Server, token, name string) models.CategoryDB {
	t.Helper()

	resp := call(t, srv, http.MethodPost, "/categories", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))

	var category models.CategoryDB
	resp.decode(t, &category)
	return category
}

func createLink(t *testing.T, srv *httptest.Server, token string, body map[string]any) models.LinkDB {
	t.Helper()

	resp := call(t, srv, http.MethodPost, "/links", token, body)
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))

	var link models.LinkDB
	resp.decode(t, &link)
	return link
}

func linkIDs(links []models.LinkDB) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestE2E_Health(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `{"message":"ok"}`, string(resp.body))
}

func TestE2E_Auth(t *testing.T) {
	srv := newTestServer(t)

	alice := register(t, srv, "alice")
	assert.NotEmpty(t, alice.Token)
	assert.Equal(t, "alice", alice.User.Username)
	assert.NotContains(t, string(call(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	}).body), "password")

	t.Run("duplicate username", func(t *testing.T) {
		resp := call(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
			"username": "alice", "email": "other@example.com", "password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.status)
		assert.Equal(t, "Username or email already exists", resp.errorMessage(t))
	})

	t.Run("short password", func(t *testing.T) {
		resp := call(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
			"username": "carol", "email": "carol@example.com", "password": "12345",
		})
		assert.Equal(t, http.StatusBadRequest, resp.status)
	})

	t.Run("login", func(t *testing.T) {
		resp := call(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "secret123",
		})
		require.Equal(t, http.StatusOK, resp.status)

		var auth models.AuthResponse
		resp.decode(t, &auth)
		assert.Equal(t, alice.User.ID, auth.User.ID)
		assert.NotEmpty(t, auth.Token)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		wrong := call(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "nope-nope",
		})
		unknown := call(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
			"email": "nobody@example.com", "password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, wrong.status)
		assert.Equal(t, http.StatusUnauthorized, unknown.status)
		assert.Equal(t, "Invalid credentials", wrong.errorMessage(t))
		assert.Equal(t, wrong.body, unknown.body)
	})

	t.Run("protected routes need a valid token", func(t *testing.T) {
		missing := call(t, srv, http.MethodGet, "/categories", "", nil)
		assert.Equal(t, http.StatusUnauthorized, missing.status)
		assert.Equal(t, "Access token required", missing.errorMessage(t))

		invalid := call(t, srv, http.MethodGet, "/links", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, invalid.status)
		assert.Equal(t, "Invalid or expired token", invalid.errorMessage(t))
	})
}

func TestE2E_AliceScenario(t *testing.T) {
	srv := newTestServer(t)
	token := register(t, srv, "alice").Token

	resp := call(t, srv, http.MethodPost, "/categories", token, map[string]string{"name": "Work", "color": "#6a9bcc"})
	require.Equal(t, http.StatusCreated, resp.status)
	var work models.CategoryDB
	resp.decode(t, &work)
	assert.Equal(t, "#6a9bcc", work.Color)

	other := createCategory(t, srv, token, "Other")
	assert.Equal(t, models.DefaultCategoryColor, other.Color)

	docs := createLink(t, srv, token, map[string]any{
		"title":       "Docs",
		"url":         "https://docs.example.com",
		"category_id": work.ID.String(),
	})

	var only []models.LinkDB
	call(t, srv, http.MethodGet, "/links", token, nil).decode(t, &only)
	require.Len(t, only, 1)
	assert.Equal(t, work.ID, only[0].CategoryID.UUID)

	var none []models.LinkDB
	call(t, srv, http.MethodGet, "/links?category_id="+other.ID.String(), token, nil).decode(t, &none)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	news := createLink(t, srv, token, map[string]any{
		"title": "News",
		"url":   "https://news.example.com",
	})
	assert.True(t, news.Uncategorized())

	var all []models.LinkDB
	call(t, srv, http.MethodGet, "/links", token, nil).decode(t, &all)
	assert.ElementsMatch(t, []uuid.UUID{docs.ID, news.ID}, linkIDs(all))

	var inWork []models.LinkDB
	call(t, srv, http.MethodGet, "/links?category_id="+work.ID.String(), token, nil).decode(t, &inWork)
	assert.Equal(t, []uuid.UUID{docs.ID}, linkIDs(inWork))

	resp = call(t, srv, http.MethodGet, "/links?category_id=not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.status)

	// deleting the category keeps its links as uncategorized
	resp = call(t, srv, http.MethodDelete, "/categories/"+work.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `{"message":"Category deleted successfully"}`, string(resp.body))

	var got models.LinkDB
	resp = call(t, srv, http.MethodGet, "/links/"+docs.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.status)
	resp.decode(t, &got)
	assert.True(t, got.Uncategorized())
	assert.Contains(t, string(resp.body), `"category_id":null`)

	inWork = nil
	call(t, srv, http.MethodGet, "/links?category_id="+work.ID.String(), token, nil).decode(t, &inWork)
	assert.Empty(t, inWork)

	resp = call(t, srv, http.MethodDelete, "/categories/"+work.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.Equal(t, "Category not found", resp.errorMessage(t))

	var categories []models.CategoryDB
	call(t, srv, http.MethodGet, "/categories", token, nil).decode(t, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, other.ID, categories[0].ID)
}

func TestE2E_LinkRoundTripAndDelete(t *testing.T) {
	srv := newTestServer(t)
	token := register(t, srv, "alice").Token

	category := createCategory(t, srv, token, "Reading")
	link := createLink(t, srv, token, map[string]any{"title": "Blog", "url": "https://blog.example.com"})

	resp := call(t, srv, http.MethodPut, "/links/"+link.ID.String(), token, map[string]any{
		"title":       "Blog (updated)",
		"url":         "https://blog.example.com/feed",
		"description": "Weekly",
		"category_id": category.ID.String(),
	})
	require.Equal(t, http.StatusOK, resp.status, string(resp.body))

	var updated, fetched models.LinkDB
	resp.decode(t, &updated)
	call(t, srv, http.MethodGet, "/links/"+link.ID.String(), token, nil).decode(t, &fetched)

	assert.Equal(t, "Blog (updated)", fetched.Title)
	assert.Equal(t, "https://blog.example.com/feed", fetched.URL)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "Weekly", *fetched.Description)
	assert.Equal(t, category.ID, fetched.CategoryID.UUID)
	assert.Equal(t, updated.ID, fetched.ID)
	assert.False(t, fetched.UpdatedAt.Before(link.UpdatedAt))

	t.Run("validation", func(t *testing.T) {
		resp := call(t, srv, http.MethodPost, "/links", token, map[string]any{"title": "", "url": ""})
		assert.Equal(t, http.StatusBadRequest, resp.status)
		assert.Equal(t, "Title and URL are required", resp.errorMessage(t))

		resp = call(t, srv, http.MethodPost, "/categories", token, map[string]any{"name": ""})
		assert.Equal(t, http.StatusBadRequest, resp.status)
		assert.Equal(t, "Category name is required", resp.errorMessage(t))
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		resp := call(t, srv, http.MethodGet, "/links/not-a-uuid", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.status)
	})

	resp = call(t, srv, http.MethodDelete, "/links/"+link.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `{"message":"Link deleted successfully"}`, string(resp.body))

	resp = call(t, srv, http.MethodDelete, "/links/"+link.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.Equal(t, "Link not found", resp.errorMessage(t))
}

func TestE2E_OwnerIsolation(t *testing.T) {
	srv := newTestServer(t)
	alice := register(t, srv, "alice").Token
	bob := register(t, srv, "bob").Token

	category := createCategory(t, srv, alice, "Private")
	link := createLink(t, srv, alice, map[string]any{
		"title":       "Secret",
		"url":         "https://secret.example.com",
		"category_id": category.ID.String(),
	})

	path := "/links/" + link.ID.String()
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, path, bob, nil).status)
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodPut, path, bob, map[string]any{
		"title": "Hijacked", "url": "https://evil.example.com",
	}).status)
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodDelete, path, bob, nil).status)

	categoryPath := "/categories/" + category.ID.String()
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodPut, categoryPath, bob, map[string]any{"name": "Mine"}).status)
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodDelete, categoryPath, bob, nil).status)

	resp := call(t, srv, http.MethodPost, "/links", bob, map[string]any{
		"title":       "Sneaky",
		"url":         "https://bob.example.com",
		"category_id": category.ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "Category not found", resp.errorMessage(t))

	var bobLinks []models.LinkDB
	call(t, srv, http.MethodGet, "/links", bob, nil).decode(t, &bobLinks)
	assert.Empty(t, bobLinks)

	// alice still sees everything untouched
	var got models.LinkDB
	call(t, srv, http.MethodGet, path, alice, nil).decode(t, &got)
	assert.Equal(t, "Secret", got.Title)
	assert.Equal(t, category.ID, got.CategoryID.UUID)
}
