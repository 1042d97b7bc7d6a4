package controller_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/tasks/controller"
	"schoolhub_backend/internals/features/school/tasks/dto"
	"schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/features/school/tasks/route"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/helpers/apperr"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	"schoolhub_backend/internals/middlewares"
)

// stubService embeds the interface so only the methods a test needs are
// implemented; anything else panics.
type stubService struct {
	controller.TasksService
	submitErr  error
	created    *dto.CreateTaskRequest
	teacherHit bool
}

func (s *stubService) Submit(_ context.Context, _ access.Requester, taskID uuid.UUID, _ dto.SubmitTaskRequest) (*model.TaskSubmissionModel, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &model.TaskSubmissionModel{ID: uuid.New(), TaskID: taskID, Status: model.SubmissionStatusSubmitted, AttemptNumber: 1}, nil
}

func (s *stubService) Create(_ context.Context, _ access.Requester, req dto.CreateTaskRequest) (*model.TaskModel, error) {
	s.created = &req
	return req.ToModel(uuid.New()), nil
}

func (s *stubService) TeacherStatistics(context.Context, access.Requester) (*dto.StatisticsResponse, error) {
	s.teacherHit = true
	return &dto.StatisticsResponse{TotalTasks: 3}, nil
}

func newTasksApp(svc controller.TasksService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler(zap.NewNop())})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uuid.NewString())
		c.Locals(helperAuth.LocRole, c.Get("X-Role"))
		return c.Next()
	})
	route.TasksRoutes(app.Group("/api"), svc)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, role, body string) (*http.Response, helper.ErrorResponse) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("X-Role", role)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var env helper.ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func TestSubmitClosedTaskIsBadRequestForEveryRole(t *testing.T) {
	svc := &stubService{submitErr: apperr.InvalidState("task is closed")}
	app := newTasksApp(svc)
	for _, role := range constants.AllRoles {
		resp, env := do(t, app, http.MethodPost, "/api/tasks/"+uuid.NewString()+"/submit", role, `{"content":"x"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, role)
		assert.Equal(t, "task is closed", env.Message)
		assert.False(t, env.Success)
	}
}

func TestSubmitOK(t *testing.T) {
	app := newTasksApp(&stubService{})
	resp, _ := do(t, app, http.MethodPost, "/api/tasks/"+uuid.NewString()+"/submit", constants.RoleStudent, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubmitRejectsBadAttachmentURL(t *testing.T) {
	app := newTasksApp(&stubService{})
	resp, env := do(t, app, http.MethodPost, "/api/tasks/"+uuid.NewString()+"/submit", constants.RoleStudent,
		`{"attachmentUrls":["not a url"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
}

func TestCreateValidatesLatePenalty(t *testing.T) {
	svc := &stubService{}
	app := newTasksApp(svc)
	body := `{"subjectAssignmentId":"` + uuid.NewString() + `","title":"Essay","dueDate":"2026-06-01T10:00:00Z","latePenalty":1.5}`
	resp, env := do(t, app, http.MethodPost, "/api/tasks", constants.RoleTeacher, body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Errors, "LatePenalty")
	assert.Nil(t, svc.created)
}

func TestCreateTeacherOnly(t *testing.T) {
	svc := &stubService{}
	app := newTasksApp(svc)
	body := `{"subjectAssignmentId":"` + uuid.NewString() + `","title":"Essay","dueDate":"2026-06-01T10:00:00Z"}`

	resp, _ := do(t, app, http.MethodPost, "/api/tasks", constants.RoleStudent, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/tasks", constants.RoleTeacher, body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, svc.created)
	assert.Equal(t, string(model.TaskTypeRegular), svc.created.TaskType)
}

func TestTeacherStatisticsNotShadowedByID(t *testing.T) {
	svc := &stubService{}
	app := newTasksApp(svc)
	resp, _ := do(t, app, http.MethodGet, "/api/tasks/teacher/statistics", constants.RoleTeacher, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, svc.teacherHit)
}
