package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"schoolhub_backend/internals/configs"
	database "schoolhub_backend/internals/databases"
	scheduler "schoolhub_backend/internals/features/users/auth/scheduler"
	"schoolhub_backend/internals/helpers/dbtime"
	"schoolhub_backend/internals/logging"
	middlewares "schoolhub_backend/internals/middlewares"
	reqLogger "schoolhub_backend/internals/middlewares/logger"
	"schoolhub_backend/internals/observability"
	routes "schoolhub_backend/internals/route"
	"schoolhub_backend/internals/seeds"
)

var release = "dev"

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Closer()
	logr := lg.Base

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		logr.Warn("sentry disabled", zap.Error(err))
	}
	defer flushSentry()

	// DB connect + pool
	db, err := database.ConnectDB(cfg, logr)
	if err != nil {
		logr.Fatal("db connect", zap.Error(err))
	}
	database.TunePool(db, logr)
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Migrate(ctx, db, logr)
		cancel()
		if err != nil {
			logr.Fatal("db migrate", zap.Error(err))
		}
	}

	if cfg.DBSeed && !cfg.IsProd() {
		if err := seeds.RunAllSeeds(context.Background(), db, logr); err != nil {
			logr.Fatal("db seed", zap.Error(err))
		}
	}

	// scheduler after the DB is ready
	bgCtx, stopBg := context.WithCancel(context.Background())
	defer stopBg()
	scheduler.StartBlacklistCleanupScheduler(bgCtx, db, logr, cfg.BlacklistRetention, 24*time.Hour)

	app := fiber.New(middlewares.WithTrustedProxies(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler(logr),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	}, cfg.TrustedProxies))

	app.Use(middlewares.RecoveryMiddleware(logr))

	app.Use(reqLogger.LoggerMiddleware(logr))

	// HTTP timeout guard aligned with statement_timeout
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	app.Use(middlewares.CorsMiddleware(cfg.CorsOrigins))
	app.Use(middlewares.GlobalRateLimiter(cfg.RateLimitPerMinute))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(dbtime.WithSchoolLocation(cfg.Timezone))

	routes.SetupRoutes(app, cfg, db, logr)

	go func() {
		logr.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logr.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown, deferred calls close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logr.Warn("shutdown", zap.Error(err))
	}
}
