package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Optional resolves the identity when a valid session cookie is present but
// never rejects the request. Public pages use it so signed-in visitors are
// recognized; handlers that need auth decide for themselves via CurrentUser.
func Optional(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(CookieName)
		if raw == "" {
			return c.Next()
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err == nil && tok.Valid {
			c.Locals("user", tok)
		}

		return c.Next()
	}
}
