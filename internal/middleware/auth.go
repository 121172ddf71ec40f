package middleware

import (
	"strings"

	"streamhub-backend/internal/auth"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the request-local under which the authenticated user id is
// stored for downstream handlers.
const UserIDKey = "user_id"

// RequireToken gates mutating routes behind a bearer token. Missing header,
// malformed scheme, or a failed verification all short-circuit with 401.
func RequireToken(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.Error(c, fiber.StatusUnauthorized, "Token format wrong")
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return utils.Error(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
