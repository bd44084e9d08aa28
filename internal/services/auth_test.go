package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/repositories"
	"github.com/sbilibin2017/linkvault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		setup     func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator)
		wantErr   error
		wantValid bool
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").Return(false, nil)
				w.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.UserDB) error {
					assert.NotEqual(t, uuid.Nil, u.UserID)
					assert.Equal(t, "alice", u.Username)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")))
					return nil
				})
				j.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token", nil)
			},
		},
		{
			name:     "missing fields",
			username: "",
			email:    "alice@example.com",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
			},
			wantValid: true,
		},
		{
			name:     "short password",
			username: "alice",
			email:    "alice@example.com",
			password: "12345",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
			},
			wantValid: true,
		},
		{
			name:     "user already exists",
			username: "bob",
			email:    "bob@example.com",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "bob", "bob@example.com").Return(true, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "duplicate detected on insert",
			username: "bob",
			email:    "bob@example.com",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "bob", "bob@example.com").Return(false, nil)
				w.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "reader error",
			username: "eve",
			email:    "eve@example.com",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "eve", "eve@example.com").Return(false, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "writer error",
			username: "carol",
			email:    "carol@example.com",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "carol", "carol@example.com").Return(false, nil)
				w.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.setup(mockReader, mockWriter, mockJWT)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
			resp, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			switch {
			case tt.wantValid:
				var verr *services.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Nil(t, resp)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, resp)
			default:
				require.NoError(t, err)
				assert.Equal(t, "token", resp.Token)
				assert.Equal(t, tt.username, resp.User.Username)
				assert.Equal(t, tt.email, resp.User.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(r *services.MockUserReader, j *services.MockJWTGenerator)
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "correct",
			setup: func(r *services.MockUserReader, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
				j.EXPECT().Generate(gomock.Any(), user.UserID).Return("token", nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct",
			setup: func(r *services.MockUserReader, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			setup: func(r *services.MockUserReader, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			email:    "alice@example.com",
			password: "correct",
			setup: func(r *services.MockUserReader, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "token error",
			email:    "alice@example.com",
			password: "correct",
			setup: func(r *services.MockUserReader, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
				j.EXPECT().Generate(gomock.Any(), user.UserID).Return("", errors.New("sign error"))
			},
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.setup(mockReader, mockJWT)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
			resp, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", resp.Token)
			assert.Equal(t, user.Public(), resp.User)
		})
	}
}
