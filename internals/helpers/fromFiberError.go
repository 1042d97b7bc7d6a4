package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/helpers/apperr"
)

// FromError renders any error returned by a service or a transaction.
// Domain kinds map to 404/403/400, *fiber.Error keeps its own code,
// validator errors become 422 and everything else is a generic 500.
func FromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := apperr.As(err); ok {
		return JsonError(c, ae.Kind.HTTPStatus(), ae.Message)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return JsonValidationError(c, ValidationFields(ve))
	}
	return JsonError(c, fiber.StatusInternalServerError, "")
}

// ValidationFields flattens validator errors into field -> messages.
func ValidationFields(ve validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if p := fe.Param(); p != "" {
			msg += "=" + p
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
