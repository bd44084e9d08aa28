package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	require.NoError(t, err)

	err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, uuid.New())
	require.NoError(t, err)

	assert.Error(t, j2.Validate(ctx, token))
}

func TestJWT_RejectsTokensWithoutUserOrExpiry(t *testing.T) {
	secret := "secret"
	j := New(WithSecretKey(secret))
	ctx := context.Background()

	tests := []struct {
		name   string
		claims gojwt.Claims
	}{
		{
			name:   "no expiry",
			claims: Claims{UserID: uuid.New()},
		},
		{
			name: "no user",
			claims: Claims{RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, tt.claims).SignedString([]byte(secret))
			require.NoError(t, err)
			assert.ErrorIs(t, j.Validate(ctx, token), ErrInvalidToken)
		})
	}
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", ErrMissingToken},
		{"InvalidFormat", "Token mytoken123", "", ErrMalformedHeader},
		{"TooManyParts", "Bearer a b c", "", ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
