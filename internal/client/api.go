// Package client is the data layer of the terminal front end: an HTTP client
// for the API, the session it authenticates with, and a query cache that
// keeps server state between reads.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

// APIError is a non-2xx response. Message is the server's error text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status of an API error, or 0 for other errors.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// APIClient talks JSON to the linkvault API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// Opt configures an APIClient.
type Opt func(*APIClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Opt {
	return func(a *APIClient) {
		a.httpClient = c
	}
}

// NewAPIClient creates a client for baseURL that authenticates with session.
func NewAPIClient(baseURL string, session *Session, opts ...Opt) *APIClient {
	c := &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		session:    session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register creates an account.
func (c *APIClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a token.
func (c *APIClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCategories returns the caller's categories.
func (c *APIClient) ListCategories(ctx context.Context) ([]models.CategoryDB, error) {
	categories := []models.CategoryDB{}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories, true); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *APIClient) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.CategoryDB, error) {
	var category models.CategoryDB
	if err := c.do(ctx, http.MethodPost, "/categories", nil, req, &category, true); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory replaces a category's name and color.
func (c *APIClient) UpdateCategory(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.CategoryDB, error) {
	var category models.CategoryDB
	if err := c.do(ctx, http.MethodPut, "/categories/"+id.String(), nil, req, &category, true); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category; its links become uncategorized.
func (c *APIClient) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id.String(), nil, nil, nil, true)
}

// ListLinks returns the caller's links, optionally for one category.
func (c *APIClient) ListLinks(ctx context.Context, filter models.LinkFilter) ([]models.LinkDB, error) {
	var query url.Values
	if filter.CategoryID.Valid {
		query = url.Values{"category_id": {filter.CategoryID.UUID.String()}}
	}

	links := []models.LinkDB{}
	if err := c.do(ctx, http.MethodGet, "/links", query, nil, &links, true); err != nil {
		return nil, err
	}
	return links, nil
}

// GetLink returns one link.
func (c *APIClient) GetLink(ctx context.Context, id uuid.UUID) (*models.LinkDB, error) {
	var link models.LinkDB
	if err := c.do(ctx, http.MethodGet, "/links/"+id.String(), nil, nil, &link, true); err != nil {
		return nil, err
	}
	return &link, nil
}

// CreateLink creates a link.
func (c *APIClient) CreateLink(ctx context.Context, req models.LinkRequest) (*models.LinkDB, error) {
	var link models.LinkDB
	if err := c.do(ctx, http.MethodPost, "/links", nil, req, &link, true); err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateLink replaces every field of a link.
func (c *APIClient) UpdateLink(ctx context.Context, id uuid.UUID, req models.LinkRequest) (*models.LinkDB, error) {
	var link models.LinkDB
	if err := c.do(ctx, http.MethodPut, "/links/"+id.String(), nil, req, &link, true); err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteLink deletes a link.
func (c *APIClient) DeleteLink(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/links/"+id.String(), nil, nil, nil, true)
}

// do sends one request. Authenticated requests carry the session token and
// expire the session when the server answers 401.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, in, out any, authenticated bool) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Debugw("request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	logger.Log.Debugw("request completed", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeError(resp)
		if authenticated && resp.StatusCode == http.StatusUnauthorized {
			c.session.Expire()
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) *APIError {
	var body models.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
