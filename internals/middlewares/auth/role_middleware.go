package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// OnlyRoles lets the request through when the caller has one of roles.
func OnlyRoles(customForbiddenMessage string, roles ...string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role, err := helperAuth.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRolesSlice is OnlyRoles for the grouped slices in constants.
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return OnlyRoles(message, allowedRoles...)
}
