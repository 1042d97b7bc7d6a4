package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/features/school/calendar/controller"
)

func CalendarRoutes(r fiber.Router, svc controller.EventLister) {
	ctrl := &controller.CalendarController{Service: svc}
	r.Get("/calendar", ctrl.List)
}
