package common

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.scnd.dev/open/forge/compat/predefine"
)

const LocalClaims = "claims"

// Jwt authenticates bearer tokens signed with secret.
func Jwt(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// * extract bearer token
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		// * parse claims
		claims, err := predefine.ParseApiClaims(secret, strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return fiber.NewError(fiber.StatusUnauthorized, "token expired")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "invalid bearer token")
		}

		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// Scope requires an authenticated token granting scope.
func Scope(scope string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		if !claims.HasScope(scope) {
			return fiber.NewError(fiber.StatusForbidden, "missing scope "+scope)
		}
		return c.Next()
	}
}

func Claims(c fiber.Ctx) *predefine.ApiClaims {
	claims, _ := c.Locals(LocalClaims).(*predefine.ApiClaims)
	return claims
}
