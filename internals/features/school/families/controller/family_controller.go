package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/families/dto"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type FamilyService interface {
	Create(ctx context.Context, req dto.CreateFamilyRequest) (*dto.FamilyResponse, error)
	Mine(ctx context.Context, userID uuid.UUID) ([]dto.LinkedStudent, error)
}

type FamilyController struct {
	Service   FamilyService
	Validator *validator.Validate
}

func NewFamilyController(svc FamilyService) *FamilyController {
	return &FamilyController{Service: svc, Validator: validator.New()}
}

// POST /api/families
func (h *FamilyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(&req); err != nil {
		return err
	}
	resp, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "family created", resp)
}

// GET /api/families/mine
func (h *FamilyController) Mine(c *fiber.Ctx) error {
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	items, err := h.Service.Mine(c.UserContext(), uid)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", items)
}
