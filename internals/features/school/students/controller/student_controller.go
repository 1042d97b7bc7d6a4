package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/students/dto"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type ProfileReader interface {
	Profile(ctx context.Context, r access.Requester, id uuid.UUID) (*dto.StudentResponse, error)
}

type StudentController struct {
	Service ProfileReader
}

// GET /api/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.Service.Profile(c.UserContext(), access.Requester{UserID: caller.UserID, Role: caller.Role}, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", resp)
}
