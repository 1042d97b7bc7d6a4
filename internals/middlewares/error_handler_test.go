package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"schoolhub_backend/internals/helpers/apperr"
)

type payload struct {
	Name string `validate:"required"`
}

func TestErrorHandlerLogsOnlyUnexpected(t *testing.T) {
	validationErr := validator.New().Struct(payload{})
	require.Error(t, validationErr)

	cases := []struct {
		name   string
		err    error
		status int
		logged bool
	}{
		{"domain", apperr.NotFound("task not found"), http.StatusNotFound, false},
		{"fiber", fiber.NewError(fiber.StatusUnauthorized, "nope"), http.StatusUnauthorized, false},
		{"wrapped fiber", pkgerrors.Wrap(fiber.NewError(fiber.StatusConflict, "taken"), "create"), http.StatusConflict, false},
		{"validation", validationErr, http.StatusUnprocessableEntity, false},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.New(core))})
			app.Get("/", func(*fiber.Ctx) error { return tc.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.logged {
				assert.Equal(t, 1, logs.FilterMessage("unhandled error").Len())
			} else {
				assert.Zero(t, logs.Len())
			}
		})
	}
}
