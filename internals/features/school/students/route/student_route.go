package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/features/school/students/controller"
)

func StudentRoutes(r fiber.Router, svc controller.ProfileReader) {
	ctrl := &controller.StudentController{Service: svc}
	r.Get("/students/:id", ctrl.GetByID)
}
