// file: internals/features/school/grades/controller/grades_controller.go
package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/grades/dto"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type StudentGradesReader interface {
	StudentGrades(ctx context.Context, r access.Requester, studentID uuid.UUID) (*dto.StudentGradesResponse, error)
}

type GradesController struct {
	Service StudentGradesReader
}

func NewGradesController(svc StudentGradesReader) *GradesController {
	return &GradesController{Service: svc}
}

// GET /api/students/:id/grades
func (h *GradesController) GetStudentGrades(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return err
	}
	studentID, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.Service.StudentGrades(c.UserContext(), access.Requester{UserID: caller.UserID, Role: caller.Role}, studentID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "student grades", resp)
}
