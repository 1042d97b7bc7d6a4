package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/tasks/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

/*
TasksRoutes mounts /tasks on an authenticated router.

Fixed paths (/teacher/statistics, /class/..., /submissions/...) are
registered before /:id so they are not shadowed.
*/
func TasksRoutes(r fiber.Router, svc controller.TasksService) {
	ctrl := controller.NewTasksController(svc)
	teacherOnly := authMw.OnlyRolesSlice(constants.RoleErrorTeacher("task management"), constants.TeacherOnly)
	teacherOrAdmin := authMw.OnlyRolesSlice(constants.RoleErrorTeacher("task management"), constants.TeacherAndAbove)

	g := r.Group("/tasks")

	g.Get("/teacher/statistics", teacherOnly, ctrl.TeacherStatistics)
	g.Get("/class/:classGroupId/subject/:subjectId", teacherOrAdmin, ctrl.ClassSubjectGrades)
	g.Get("/class/:classGroupId/subject/:subjectId/export", teacherOrAdmin, ctrl.ExportClassSubjectGrades)
	g.Patch("/submissions/:id/grade", teacherOnly, ctrl.Grade)

	g.Get("/", ctrl.List)
	g.Post("/", teacherOnly, ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Delete("/:id", teacherOrAdmin, ctrl.Delete)
	g.Patch("/:id/publish", teacherOrAdmin, ctrl.Publish)
	g.Patch("/:id/close", teacherOrAdmin, ctrl.Close)
	g.Post("/:id/submit", ctrl.Submit)
	g.Get("/:id/submissions", teacherOrAdmin, ctrl.Submissions)
	g.Get("/:id/statistics", teacherOrAdmin, ctrl.TaskStatistics)
}
