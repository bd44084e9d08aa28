package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/models"
)

func newSignedInClient(t *testing.T, handler http.Handler) (*APIClient, *Session) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session, err := NewSession(&MemoryStorage{})
	require.NoError(t, err)
	require.NoError(t, session.Start(testAuth("token-1")))

	return NewAPIClient(srv.URL+"/", session, WithHTTPClient(srv.Client())), session
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAPIClient_AttachesBearerToken(t *testing.T) {
	category := models.CategoryDB{ID: uuid.New(), Name: "Work", Color: "#6a9bcc"}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.CategoryDB{category})
	})
	api, _ := newSignedInClient(t, mux)

	categories, err := api.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, category.ID, categories[0].ID)
}

func TestAPIClient_ListLinksFilter(t *testing.T) {
	categoryID := uuid.New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /links", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.LinkDB{{ID: uuid.New(), Title: r.URL.Query().Get("category_id")}})
	})
	api, _ := newSignedInClient(t, mux)

	links, err := api.ListLinks(context.Background(), models.LinkFilter{CategoryID: uuid.NullUUID{UUID: categoryID, Valid: true}})
	require.NoError(t, err)
	assert.Equal(t, categoryID.String(), links[0].Title)

	links, err = api.ListLinks(context.Background(), models.LinkFilter{})
	require.NoError(t, err)
	assert.Empty(t, links[0].Title)
}

func TestAPIClient_Errors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /links", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Title and URL are required"})
	})
	mux.HandleFunc("DELETE /links/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Link not found"})
	})
	mux.HandleFunc("GET /links/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	api, session := newSignedInClient(t, mux)
	ctx := context.Background()

	_, err := api.CreateLink(ctx, models.LinkRequest{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Title and URL are required", err.Error())

	err = api.DeleteLink(ctx, uuid.New())
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Equal(t, "Link not found", err.Error())

	_, err = api.GetLink(ctx, uuid.New())
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	assert.Equal(t, "Bad Gateway", err.Error())

	assert.True(t, session.Authenticated())
	assert.Zero(t, StatusOf(context.Canceled))
}

func TestAPIClient_UnauthorizedExpiresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /links", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
	})
	api, session := newSignedInClient(t, mux)

	_, err := api.ListLinks(context.Background(), models.LinkFilter{})
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
	assert.False(t, session.Authenticated())

	select {
	case <-session.Unauthorized():
	default:
		t.Fatal("expected an unauthorized notification")
	}
}

func TestAPIClient_LoginFailureDoesNotExpire(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid credentials"})
	})
	api, session := newSignedInClient(t, mux)

	_, err := api.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.True(t, session.Authenticated())

	select {
	case <-session.Unauthorized():
		t.Fatal("a failed login is not an expired session")
	default:
	}
}
