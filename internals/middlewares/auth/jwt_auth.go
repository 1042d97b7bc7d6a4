package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // read the access_token cookie when no Bearer header is sent
	// Revoked, when set, rejects tokens revoked by logout.
	Revoked func(ctx context.Context, raw string) (bool, error)
}

// AuthJWT verifies the bearer token and hydrates user_id, role and
// user_name into Locals for the helpers in helpers/auth.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := helperAuth.GetRawAccessToken(c, o.AllowCookieFallback)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		claims, err := helperAuth.ParseAccessToken(secret, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		role := strings.ToLower(strings.TrimSpace(claims.Role))
		if !constants.IsKnownRole(role) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if strings.TrimSpace(claims.Subject) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		if o.Revoked != nil {
			revoked, err := o.Revoked(c.UserContext(), raw)
			if err != nil {
				return err
			}
			if revoked {
				return fiber.NewError(fiber.StatusUnauthorized, "session has ended, please log in again")
			}
		}

		c.Locals(helperAuth.LocRawToken, raw)
		c.Locals(helperAuth.LocUserID, claims.Subject)
		c.Locals(helperAuth.LocRole, role)
		if claims.UserName != "" {
			c.Locals(helperAuth.LocUserName, claims.UserName)
		}
		return c.Next()
	}
}
