package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/families/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func FamilyRoutes(r fiber.Router, svc controller.FamilyService) {
	ctrl := controller.NewFamilyController(svc)
	g := r.Group("/families")
	g.Post("/", authMw.OnlyRolesSlice(constants.RoleErrorAdmin("family management"), constants.AdminOnly), ctrl.Create)
	g.Get("/mine", authMw.OnlyRolesSlice("only family accounts have linked students", constants.FamilyOnly), ctrl.Mine)
}
