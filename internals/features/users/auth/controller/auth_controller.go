package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/features/users/auth/dto"
	"schoolhub_backend/internals/features/users/auth/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc, Validator: validator.New()}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ac.Validator.Struct(&body); err != nil {
		return err
	}

	resp, err := ac.Service.Login(c.UserContext(), body)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "login successful", resp)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	me, err := ac.Service.Me(c.UserContext(), uid)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", me)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals(helperAuth.LocRawToken).(string)
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := ac.Service.Logout(c.UserContext(), raw); err != nil {
		return err
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "logged out", nil)
}
