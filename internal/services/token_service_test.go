package services_test

import (
	"errors"
	"testing"
	"time"

	"potato/internal/apperrors"
	"potato/internal/dto"
	"potato/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

const testJWTSecret = "test_jwt_secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestTokenService_ValidateToken(t *testing.T) {
	tokenService := services.NewTokenService(testJWTSecret)

	validTokenString := signToken(t, testJWTSecret, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	claims, err := tokenService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])

	_, err = tokenService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	expiredTokenString := signToken(t, testJWTSecret, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	_, err = tokenService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	otherSecret := signToken(t, "another_secret", jwt.MapClaims{"user_id": "user-123"})
	_, err = tokenService.ValidateToken(otherSecret)
	assert.Error(t, err)
}

func TestTokenService_Authenticate(t *testing.T) {
	tokenService := services.NewTokenService(testJWTSecret)

	token := dto.OAuth2AccessToken{AccessToken: signToken(t, testJWTSecret, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})}
	userID, err := tokenService.Authenticate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	noSubject := dto.OAuth2AccessToken{AccessToken: signToken(t, testJWTSecret, jwt.MapClaims{"username": "potato"})}
	_, err = tokenService.Authenticate(noSubject)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, err = tokenService.Authenticate(dto.OAuth2AccessToken{})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
