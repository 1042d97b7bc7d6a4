package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/users/user/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

// UserRoutes mounts account administration, admin only.
func UserRoutes(r fiber.Router, svc controller.UserService) {
	ctrl := controller.NewUserController(svc)
	g := r.Group("/users", authMw.OnlyRolesSlice(constants.RoleErrorAdmin("user management"), constants.AdminOnly))
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:id/status", ctrl.UpdateStatus)
}
