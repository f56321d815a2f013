package middleware

import (
	"log"
	"strings"

	"potato/internal/apperrors"
	"potato/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// TokenAuthenticator resolves an access token to the ID of its user.
type TokenAuthenticator interface {
	Authenticate(token dto.OAuth2AccessToken) (string, error)
}

// AuthRequired is a Fiber middleware that requires a valid bearer token and
// stores the caller's ID under the "user_id" local.
func AuthRequired(authenticator TokenAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "") {
			return unauthorized(c, "Authorization header format must be 'Bearer <token>'")
		}

		userID, err := authenticator.Authenticate(dto.OAuth2AccessToken{AccessToken: parts[1]})
		if err != nil {
			log.Printf("Bearer token rejected: %v", err)
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    apperrors.Unauthorized,
		"message": message,
	})
}
