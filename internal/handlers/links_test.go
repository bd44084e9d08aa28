package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLinksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, categoryID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockLinkLister)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "all links",
			target: "/links",
			mockSetup: func(m *MockLinkLister) {
				m.EXPECT().List(gomock.Any(), userID, models.LinkFilter{}).Return([]models.LinkDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:   "filtered",
			target: "/links?category_id=" + categoryID.String(),
			mockSetup: func(m *MockLinkLister) {
				filter := models.LinkFilter{CategoryID: uuid.NullUUID{UUID: categoryID, Valid: true}}
				m.EXPECT().List(gomock.Any(), userID, filter).Return([]models.LinkDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "malformed filter",
			target:       "/links?category_id=abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid category_id"}`,
		},
		{
			name:   "store error",
			target: "/links",
			mockSetup: func(m *MockLinkLister) {
				m.EXPECT().List(gomock.Any(), userID, models.LinkFilter{}).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLinkLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := httptest.NewRecorder()
			NewListLinksHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodGet, tt.target, "", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := NewMockLinkGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), userID, id).Return(&models.LinkDB{ID: id, Title: "A", URL: "https://a.com"}, nil)

		rr := httptest.NewRecorder()
		NewGetLinkHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodGet, "/links/"+id.String(), id.String(), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"url":"https://a.com"`)
		assert.Contains(t, rr.Body.String(), `"category_id":null`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockLinkGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), userID, id).Return(nil, services.ErrNotFound)

		rr := httptest.NewRecorder()
		NewGetLinkHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodGet, "/links/"+id.String(), id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Link not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := NewMockLinkGetter(ctrl)

		rr := httptest.NewRecorder()
		NewGetLinkHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodGet, "/links/x", "x", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, categoryID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLinkCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "with category and description",
			body: `{"title":"Docs","url":"https://docs.example.com","description":"d","category_id":"` + categoryID.String() + `"}`,
			mockSetup: func(m *MockLinkCreator) {
				m.EXPECT().Create(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, in models.LinkInput) (*models.LinkDB, error) {
						assert.Equal(t, "Docs", in.Title)
						require.NotNil(t, in.Description)
						assert.Equal(t, "d", *in.Description)
						assert.Equal(t, uuid.NullUUID{UUID: categoryID, Valid: true}, in.CategoryID)
						return &models.LinkDB{Title: in.Title, URL: in.URL, CategoryID: in.CategoryID}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "null category",
			body: `{"title":"Docs","url":"https://docs.example.com","category_id":null}`,
			mockSetup: func(m *MockLinkCreator) {
				m.EXPECT().Create(gomock.Any(), userID, models.LinkInput{Title: "Docs", URL: "https://docs.example.com"}).
					Return(&models.LinkDB{Title: "Docs"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "empty category",
			body: `{"title":"Docs","url":"https://docs.example.com","category_id":""}`,
			mockSetup: func(m *MockLinkCreator) {
				m.EXPECT().Create(gomock.Any(), userID, models.LinkInput{Title: "Docs", URL: "https://docs.example.com"}).
					Return(&models.LinkDB{Title: "Docs"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing url",
			body:         `{"title":"Docs"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Title and URL are required"}`,
		},
		{
			name:         "malformed category id",
			body:         `{"title":"Docs","url":"https://docs.example.com","category_id":"nope"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Category not found"}`,
		},
		{
			name: "foreign category",
			body: `{"title":"Docs","url":"https://docs.example.com","category_id":"` + categoryID.String() + `"}`,
			mockSetup: func(m *MockLinkCreator) {
				m.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, &services.ValidationError{Message: "Category not found"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Category not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLinkCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := httptest.NewRecorder()
			NewCreateLinkHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodPost, "/links", "", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestUpdateLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()
	body := `{"title":"B","url":"https://b.com"}`

	t.Run("updated", func(t *testing.T) {
		svc := NewMockLinkUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), userID, id, models.LinkInput{Title: "B", URL: "https://b.com"}).
			Return(&models.LinkDB{ID: id, Title: "B", URL: "https://b.com"}, nil)

		rr := httptest.NewRecorder()
		NewUpdateLinkHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodPut, "/links/"+id.String(), id.String(), strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"title":"B"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockLinkUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), userID, id, gomock.Any()).Return(nil, services.ErrNotFound)

		rr := httptest.NewRecorder()
		NewUpdateLinkHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodPut, "/links/"+id.String(), id.String(), strings.NewReader(body)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Link not found"}`, rr.Body.String())
	})
}

func TestDeleteLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()
	svc := NewMockLinkDeleter(ctrl)

	gomock.InOrder(
		svc.EXPECT().Delete(gomock.Any(), userID, id).Return(nil),
		svc.EXPECT().Delete(gomock.Any(), userID, id).Return(services.ErrNotFound),
	)

	handler := NewDeleteLinkHandler(svc, fixedUser(userID))

	rr := httptest.NewRecorder()
	handler(rr, newRequest(http.MethodDelete, "/links/"+id.String(), id.String(), nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Link deleted successfully"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler(rr, newRequest(http.MethodDelete, "/links/"+id.String(), id.String(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
