package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMissingToken is returned when the request carries no bearer token.
	ErrMissingToken = errors.New("authorization header missing")
	// ErrMalformedHeader is returned when the Authorization header is not "Bearer <token>".
	ErrMalformedHeader = errors.New("invalid authorization header format")
	// ErrInvalidToken is returned when a token fails signature, expiry or claim checks.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey []byte        // Secret key for signing tokens
	exp       time.Duration // Token expiration duration
	now       func() time.Time
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(key)
	}
}

// WithExpiration sets the lifetime of generated tokens.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a new JWT instance. Tokens live for 24 hours unless WithExpiration is given.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: 24 * time.Hour,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for the given user.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses and verifies the token and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Validate reports whether the token is well formed, correctly signed and not expired.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrMalformedHeader
	}

	return parts[1], nil
}
