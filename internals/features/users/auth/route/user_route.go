package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/features/users/auth/controller"
	"schoolhub_backend/internals/features/users/auth/service"
	"schoolhub_backend/internals/middlewares"
)

// AuthRoutes mounts /auth/login on the public router, /auth/me and
// /auth/logout on the authenticated one.
func AuthRoutes(public fiber.Router, private fiber.Router, svc *service.AuthService) {
	ctrl := controller.NewAuthController(svc)

	a := public.Group("/auth")
	a.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	private.Get("/auth/me", ctrl.Me)
	private.Post("/auth/logout", ctrl.Logout)
}
