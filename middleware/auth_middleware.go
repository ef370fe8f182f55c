package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

const authScheme = "Bearer"

// Protected guards write routes with an HS256 bearer token. An empty secret disables the guard.
func Protected(secret string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		TokenLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme:   authScheme,
		ErrorHandler: jwtError,
	})
}

// jwtError tells an absent token (400) apart from a rejected one (401) by looking at the request itself.
func jwtError(c *fiber.Ctx, _ error) error {
	if !hasBearerToken(c) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Missing or malformed JWT"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired JWT"})
}

func hasBearerToken(c *fiber.Ctx) bool {
	auth := c.Get(fiber.HeaderAuthorization)
	l := len(authScheme)
	return len(auth) > l+1 && strings.EqualFold(auth[:l], authScheme) && strings.TrimSpace(auth[l:]) != ""
}
