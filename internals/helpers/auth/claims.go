package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocUserName = "user_name"
	LocRawToken = "raw_token"
)

// Caller is the authenticated requester of the current request.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

// GetUserIDFromToken reads c.Locals("user_id").
// 401 when the request is anonymous, 400 when the value is not a UUID.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "not logged in")
	}

	var s string
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "not logged in")
		}
		return t, nil
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid user id in token")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "not logged in")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid user id in token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, _ := c.Locals(LocRole).(string)
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "role not found in token")
	}
	return role, nil
}

// GetCaller combines user id and role.
func GetCaller(c *fiber.Ctx) (Caller, error) {
	uid, err := GetUserIDFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	role, err := GetRoleFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	return Caller{UserID: uid, Role: role}, nil
}
