package services

import (
	"fmt"
	"log"

	"potato/internal/apperrors"
	"potato/internal/dto"

	"github.com/dgrijalva/jwt-go"
)

// TokenService verifies the HS256 bearer tokens presented by clients.
type TokenService struct {
	jwtSecret []byte
}

// NewTokenService creates a new TokenService.
func NewTokenService(jwtSecret string) *TokenService {
	return &TokenService{
		jwtSecret: []byte(jwtSecret),
	}
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *TokenService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Authenticate returns the user ID carried in the user_id claim of token.
func (s *TokenService) Authenticate(token dto.OAuth2AccessToken) (string, error) {
	claims, err := s.ValidateToken(token.AccessToken)
	if err != nil {
		return "", apperrors.ErrUnauthorized.Wrap(err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUnauthorized.WithMessage("token has no user_id claim")
	}
	return userID, nil
}
