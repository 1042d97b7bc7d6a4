// file: internals/features/school/tasks/controller/tasks_controller.go
package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/tasks/dto"
	"schoolhub_backend/internals/features/school/tasks/lifecycle"
	"schoolhub_backend/internals/features/school/tasks/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// TasksService is what the controller needs from the service layer.
type TasksService interface {
	Create(ctx context.Context, r access.Requester, req dto.CreateTaskRequest) (*model.TaskModel, error)
	Get(ctx context.Context, r access.Requester, id uuid.UUID) (*dto.TaskResponse, error)
	List(ctx context.Context, r access.Requester, q dto.ListTasksQuery, p helper.Paging) ([]dto.TaskResponse, int64, error)
	Publish(ctx context.Context, r access.Requester, id uuid.UUID) (*model.TaskModel, int, error)
	Close(ctx context.Context, r access.Requester, id uuid.UUID) (*model.TaskModel, error)
	Delete(ctx context.Context, r access.Requester, id uuid.UUID) error
	Submit(ctx context.Context, r access.Requester, taskID uuid.UUID, req dto.SubmitTaskRequest) (*model.TaskSubmissionModel, error)
	Grade(ctx context.Context, r access.Requester, submissionID uuid.UUID, req dto.GradeSubmissionRequest) (*model.TaskSubmissionModel, error)
	Submissions(ctx context.Context, r access.Requester, taskID uuid.UUID) ([]dto.SubmissionResponse, error)
	TaskStatistics(ctx context.Context, r access.Requester, taskID uuid.UUID) (*dto.StatisticsResponse, error)
	TeacherStatistics(ctx context.Context, r access.Requester) (*dto.StatisticsResponse, error)
	ClassSubjectGrades(ctx context.Context, r access.Requester, classGroupID, subjectID uuid.UUID) (*dto.ClassSubjectGradesResponse, error)
}

type TasksController struct {
	Service   TasksService
	Validator *validator.Validate
}

func NewTasksController(svc TasksService) *TasksController {
	return &TasksController{Service: svc, Validator: validator.New()}
}

func requester(c *fiber.Ctx) (access.Requester, error) {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return access.Requester{}, err
	}
	return access.Requester{UserID: caller.UserID, Role: caller.Role}, nil
}

/* =========================================================
   TASKS
========================================================= */

// POST /api/tasks
func (h *TasksController) Create(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(&req); err != nil {
		return err
	}

	t, err := h.Service.Create(c.UserContext(), r, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "task created", dto.FromTask(t))
}

// GET /api/tasks
func (h *TasksController) List(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	var q dto.ListTasksQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	if err := h.Validator.Struct(&q); err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	items, total, err := h.Service.List(c.UserContext(), r, q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/tasks/:id
func (h *TasksController) Get(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.Service.Get(c.UserContext(), r, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", resp)
}

// PATCH /api/tasks/:id/publish
func (h *TasksController) Publish(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	t, created, err := h.Service.Publish(c.UserContext(), r, id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "task published", fiber.Map{
		"task":               dto.FromTask(t),
		"submissionsCreated": created,
	})
}

// PATCH /api/tasks/:id/close
func (h *TasksController) Close(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	t, err := h.Service.Close(c.UserContext(), r, id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "task closed", dto.FromTask(t))
}

// DELETE /api/tasks/:id
func (h *TasksController) Delete(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(c.UserContext(), r, id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "task deleted", fiber.Map{"id": id})
}

/* =========================================================
   SUBMISSIONS
========================================================= */

// POST /api/tasks/:id/submit
func (h *TasksController) Submit(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.SubmitTaskRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}
	if err := h.Validator.Struct(&req); err != nil {
		return err
	}

	sub, err := h.Service.Submit(c.UserContext(), r, id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "task submitted", dto.FromSubmission(sub, string(sub.Status), false))
}

// PATCH /api/tasks/submissions/:id/grade
func (h *TasksController) Grade(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.Validator.Struct(&req); err != nil {
		return err
	}

	sub, err := h.Service.Grade(c.UserContext(), r, id, req)
	if err != nil {
		return err
	}
	msg := "submission graded"
	ds := lifecycle.DisplayGraded
	if sub.NeedsRevision {
		msg = "submission returned for revision"
		ds = lifecycle.DisplayReturned
	}
	return helper.JsonUpdated(c, msg, dto.FromSubmission(sub, string(ds), true))
}

// GET /api/tasks/:id/submissions
func (h *TasksController) Submissions(c *fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.Service.Submissions(c.UserContext(), r, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", items)
}
