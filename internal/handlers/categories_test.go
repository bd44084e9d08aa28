package handlers

import (
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
)

func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	category := models.CategoryDB{ID: uuid.New(), UserID: userID, Name: "Work", Color: "#6a9bcc"}

	t.Run("lists", func(t *testing.T) {
		svc := NewMockCategoryLister(ctrl)
		svc.EXPECT().List(gomock.Any(), userID).Return([]models.CategoryDB{category}, nil)

		rr := httptest.NewRecorder()
		NewListCategoriesHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodGet, "/categories", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Work"`)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := NewMockCategoryLister(ctrl)
		svc.EXPECT().List(gomock.Any(), userID).Return([]models.CategoryDB{}, nil)

		rr := httptest.NewRecorder()
		NewListCategoriesHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodGet, "/categories", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("no user in context", func(t *testing.T) {
		svc := NewMockCategoryLister(ctrl)

		rr := httptest.NewRecorder()
		NewListCategoriesHandler(svc, noUser)(rr, newRequest(http.MethodGet, "/categories", "", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("store error", func(t *testing.T) {
		svc := NewMockCategoryLister(ctrl)
		svc.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewListCategoriesHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodGet, "/categories", "", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

func TestCreateCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCategoryCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"name":"Work","color":"#6a9bcc"}`,
			mockSetup: func(m *MockCategoryCreator) {
				m.EXPECT().Create(gomock.Any(), userID, "Work", "#6a9bcc").
					Return(&models.CategoryDB{Name: "Work", Color: "#6a9bcc"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "color omitted",
			body: `{"name":"Work"}`,
			mockSetup: func(m *MockCategoryCreator) {
				m.EXPECT().Create(gomock.Any(), userID, "Work", "").
					Return(&models.CategoryDB{Name: "Work", Color: models.DefaultCategoryColor}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "name missing",
			body:         `{"color":"#6a9bcc"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Category name is required"}`,
		},
		{
			name:         "bad color",
			body:         `{"name":"Work","color":"blue"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Color must be a hex color such as #3b82f6"}`,
		},
		{
			name: "blank name rejected by service",
			body: `{"name":"  "}`,
			mockSetup: func(m *MockCategoryCreator) {
				m.EXPECT().Create(gomock.Any(), userID, "  ", "").
					Return(nil, &services.ValidationError{Message: "Category name is required"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Category name is required"}`,
		},
		{
			name:         "invalid json",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockCategoryCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := httptest.NewRecorder()
			NewCreateCategoryHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodPost, "/categories", "", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestUpdateCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		id           string
		body         string
		mockSetup    func(m *MockCategoryUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name: "updated",
			id:   id.String(),
			body: `{"name":"Job","color":"#000000"}`,
			mockSetup: func(m *MockCategoryUpdater) {
				m.EXPECT().Update(gomock.Any(), userID, id, "Job", "#000000").
					Return(&models.CategoryDB{ID: id, Name: "Job", Color: "#000000"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not owned",
			id:   id.String(),
			body: `{"name":"Job"}`,
			mockSetup: func(m *MockCategoryUpdater) {
				m.EXPECT().Update(gomock.Any(), userID, id, "Job", "").Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Category not found"}`,
		},
		{
			name:         "malformed id",
			id:           "42",
			body:         `{"name":"Job"}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Category not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockCategoryUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPut, "/categories/"+tt.id, tt.id, strings.NewReader(tt.body))
			NewUpdateCategoryHandler(svc, fixedUser(userID))(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestDeleteCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()

	t.Run("deleted", func(t *testing.T) {
		svc := NewMockCategoryDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)

		rr := httptest.NewRecorder()
		NewDeleteCategoryHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodDelete, "/categories/"+id.String(), id.String(), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Category deleted successfully"}`, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockCategoryDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), userID, id).Return(services.ErrNotFound)

		rr := httptest.NewRecorder()
		NewDeleteCategoryHandler(svc, fixedUser(userID))(rr, newRequest(http.MethodDelete, "/categories/"+id.String(), id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Category not found"}`, rr.Body.String())
	})
}
