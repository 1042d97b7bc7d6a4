// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	authMw "schoolhub_backend/internals/middlewares/auth"
	routeDetails "schoolhub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, cfg *configs.Config, db *gorm.DB, log *zap.Logger) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Info("setting up base routes")
	BaseRoutes(app, db, cfg.Env)

	// ===================== GROUPS =====================
	blacklist := helperAuth.NewBlacklist(db, cfg.JWTSecret)
	public := app.Group("/api")
	private := app.Group("/api",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              cfg.JWTSecret,
			AllowCookieFallback: true,
			Revoked:             blacklist.IsBlacklisted,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	log.Info("mounting auth routes")
	routeDetails.AuthRoutes(public, private, cfg, db, log)

	log.Info("mounting school routes")
	routeDetails.SchoolRoutes(private, db, log)
}
