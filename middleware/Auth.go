package middleware

import (
	"errors"
	"strings"

	"bookstore-api/dto"
	"bookstore-api/util"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber.Locals key under which an allowed request's parsed
// claim set is stored for downstream handlers (e.g. audit logging).
const ClaimsKey = "auth_claims"

type AuthMiddleware struct {
	tokens *util.TokenIssuer
	logger *util.Logger
}

func NewAuthMiddleware(tokens *util.TokenIssuer, logger *util.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// RequireAuth verifies the bearer token on each request before any business
// logic runs. Missing, malformed, badly signed or expired tokens are all 401.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header"})
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			m.logger.Warn("rejected token on %s %s: %v", c.Method(), c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireRoles gates an operation on role membership. It expects RequireAuth
// to have run earlier in the chain; 403 when the token is valid but carries
// none of the required roles.
func (m *AuthMiddleware) RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(ClaimsKey).(*dto.AuthClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization"})
		}

		if !claims.HasAnyRole(roles...) {
			m.logger.Warn("user %s denied on %s %s: %v", claims.UserID, c.Method(), c.Path(), util.ErrInsufficientRole)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}

		return c.Next()
	}
}

// ClaimsFromCtx returns the claim set stored by RequireAuth.
func ClaimsFromCtx(c *fiber.Ctx) (*dto.AuthClaims, error) {
	claims, ok := c.Locals(ClaimsKey).(*dto.AuthClaims)
	if !ok {
		return nil, errors.New("no claims in request context")
	}
	return claims, nil
}
