package auth

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the cookie the session token travels in.
const CookieName = "token"

// TokenTTL bounds how long an issued session token stays valid.
const TokenTTL = 72 * time.Hour

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the authenticated caller, resolved once per request by the
// JWT middleware and read by handlers via CurrentUser. Handlers never reach
// into ambient request state beyond this.
type Identity struct {
	UserID   int    `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IssueToken signs an HS256 session token carrying the identity claims.
func IssueToken(secret string, id Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   id.UserID,
		"full_name": id.FullName,
		"email":     id.Email,
		"role":      id.Role,
		"exp":       time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Middleware verifies the session cookie and stores the parsed token in
// locals. Requests without a valid token get a plain 401.
func Middleware(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + CookieName,
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		},
	})
}

// RequireRole rejects requests whose identity does not carry the given role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}
		if id.Role != role {
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		}
		return c.Next()
	}
}

// CurrentUser extracts the Identity from the jwt.Token the middleware put in
// `c.Locals("user")`.
func CurrentUser(c *fiber.Ctx) (Identity, error) {
	u := c.Locals("user")
	if u == nil {
		return Identity{}, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return Identity{}, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fiber.ErrUnauthorized
	}

	userID, err := intClaim(claims, "user_id")
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		UserID:   userID,
		FullName: stringClaim(claims, "full_name"),
		Email:    stringClaim(claims, "email"),
		Role:     stringClaim(claims, "role"),
	}, nil
}

func intClaim(claims jwt.MapClaims, key string) (int, error) {
	raw, ok := claims[key]
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fiber.ErrUnauthorized
		}
		return id, nil
	default:
		return 0, fiber.ErrUnauthorized
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
