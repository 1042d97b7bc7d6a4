package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/academics/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func AssignmentRoutes(r fiber.Router, svc controller.AssignmentLister) {
	ctrl := &controller.AssignmentController{Service: svc}
	r.Get("/subject-assignments/mine",
		authMw.OnlyRolesSlice(constants.RoleErrorTeacher("subject assignments"), constants.TeacherOnly),
		ctrl.Mine,
	)
}
