package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/academics/dto"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AssignmentLister interface {
	Mine(ctx context.Context, userID uuid.UUID) ([]dto.SubjectAssignmentResponse, error)
}

type AssignmentController struct {
	Service AssignmentLister
}

// GET /api/subject-assignments/mine
func (h *AssignmentController) Mine(c *fiber.Ctx) error {
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
