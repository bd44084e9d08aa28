package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func fixedUser(id uuid.UUID) UserIDGetter {
	return func(context.Context) (uuid.UUID, bool) { return id, true }
}

func noUser(context.Context) (uuid.UUID, bool) { return uuid.Nil, false }

// newRequest builds a request with an optional {id} chi path parameter.
func newRequest(method, target, id string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if id == "" {
		return req
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
