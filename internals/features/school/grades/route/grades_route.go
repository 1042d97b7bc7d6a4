package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/features/school/grades/controller"
)

// GradesRoutes expects an authenticated router. Access is decided per
// student inside the service, so every role may call it.
func GradesRoutes(r fiber.Router, svc controller.StudentGradesReader) {
	ctrl := controller.NewGradesController(svc)
	r.Get("/students/:id/grades", ctrl.GetStudentGrades)
}
