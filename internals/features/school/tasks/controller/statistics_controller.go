package controller

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/features/school/tasks/export"
	helper "schoolhub_backend/internals/helpers"
)

// GET /api/tasks/:id/statistics
func (h *TasksController) TaskStatistics(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	st, err := h.Service.TaskStatistics(c.UserContext(), r, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", st)
}

// GET /api/tasks/teacher/statistics
func (h *TasksController) TeacherStatistics(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	st, err := h.Service.TeacherStatistics(c.UserContext(), r)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", st)
}

// GET /api/tasks/class/:classGroupId/subject/:subjectId
func (h *TasksController) ClassSubjectGrades(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	classID, err := helper.ParamUUID(c, "classGroupId")
	if err != nil {
		return err
	}
	subjectID, err := helper.ParamUUID(c, "subjectId")
	if err != nil {
		return err
	}
	resp, err := h.Service.ClassSubjectGrades(c.UserContext(), r, classID, subjectID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", resp)
}

// GET /api/tasks/class/:classGroupId/subject/:subjectId/export
func (h *TasksController) ExportClassSubjectGrades(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	classID, err := helper.ParamUUID(c, "classGroupId")
	if err != nil {
		return err
	}
	subjectID, err := helper.ParamUUID(c, "subjectId")
	if err != nil {
		return err
	}
	resp, err := h.Service.ClassSubjectGrades(c.UserContext(), r, classID, subjectID)
	if err != nil {
		return err
	}
	buf, err := export.ClassSubjectWorkbook(resp)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Attachment(export.FileName(resp))
	return c.Send(buf.Bytes())
}
