package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	authRoutes "schoolhub_backend/internals/features/users/auth/route"
	authService "schoolhub_backend/internals/features/users/auth/service"
	userRoutes "schoolhub_backend/internals/features/users/user/route"
	userService "schoolhub_backend/internals/features/users/user/service"
)

func AuthRoutes(public, private fiber.Router, cfg *configs.Config, db *gorm.DB, log *zap.Logger) {
	svc := authService.NewAuthService(db, log, cfg.JWTSecret, cfg.JWTTTL)
	authRoutes.AuthRoutes(public, private, svc)
	userRoutes.UserRoutes(private, userService.NewUserService(db, log))
}
