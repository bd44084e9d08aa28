package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// dummyHash is compared against when the email is unknown so that both
// login failures take a bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("linkvault"), bcrypt.DefaultCost)
	return hash
})

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user and returns a token for it.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, newValidationError("Username, email and password are required")
	}
	if len(password) < MinPasswordLength {
		return nil, newValidationError("Password must be at least 6 characters")
	}

	exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "error", err)
		return nil, err
	}
	if exists {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "error", err)
		return nil, err
	}

	return svc.respond(ctx, user)
}

// Login checks the credentials and returns a token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.UserID)
		return nil, ErrInvalidCredentials
	}

	return svc.respond(ctx, user)
}

func (svc *AuthService) respond(ctx context.Context, user *models.UserDB) (*models.AuthResponse, error) {
	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}
