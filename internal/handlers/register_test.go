package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	authResp := &models.AuthResponse{
		Token: "JWT_TOKEN",
		User:  models.PublicUser{ID: userID, Username: "john", Email: "john@example.com"},
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(authResp, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"token":"JWT_TOKEN","user":{"id":"` + userID.String() + `","username":"john","email":"john@example.com"}}`,
		},
		{
			name:         "missing fields",
			body:         `{"username":"john","password":"secret"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Username, email and password are required"}`,
		},
		{
			name:         "invalid email",
			body:         `{"username":"john","email":"john","password":"secret"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid email address"}`,
		},
		{
			name:         "short password",
			body:         `{"username":"john","email":"john@example.com","password":"12345"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Password must be at least 6 characters"}`,
		},
		{
			name: "user already exists",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Username or email already exists"}`,
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "secret").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestRegisterHandler_ResponseHasNoHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "t", User: models.PublicUser{ID: uuid.New(), Username: "a", Email: "a@b.c"}}, nil)

	body, _ := json.Marshal(models.RegisterRequest{Username: "a", Email: "a@b.c", Password: "secret"})
	rr := httptest.NewRecorder()
	NewRegisterHandler(mockSvc)(rr, httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
}
