package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/calendar/dto"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	"schoolhub_backend/internals/helpers/dbtime"
)

type EventLister interface {
	Events(ctx context.Context, r access.Requester, from, to *time.Time) ([]dto.Event, error)
}

type CalendarController struct {
	Service EventLister
}

// GET /api/calendar?from=&to=
func (h *CalendarController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return err
	}
	from, err := dbtime.ParseDate(c, c.Query("from"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := dbtime.ParseDate(c, c.Query("to"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid to date")
	}

	events, err := h.Service.Events(c.UserContext(), access.Requester{UserID: caller.UserID, Role: caller.Role}, from, to)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", events)
}
