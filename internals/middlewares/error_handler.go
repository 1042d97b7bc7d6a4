package middlewares

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/observability"
)

// ErrorHandler is the fiber.Config ErrorHandler. Everything that escapes a
// handler ends up in the JSON error envelope.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if !isExpected(err) {
			log.Error("unhandled error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			observability.CaptureErr(err)
		}
		return helper.FromError(c, err)
	}
}

// isExpected covers every error FromError renders with its own status.
func isExpected(err error) bool {
	if _, ok := apperr.As(err); ok {
		return true
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return true
	}
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}
