// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const LocSchoolLoc = "school_loc" // *time.Location

// WithSchoolLocation stores the school timezone in Locals for the helpers
// below.
func WithSchoolLocation(loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	return func(c *fiber.Ctx) error {
		c.Locals(LocSchoolLoc, loc)
		return c.Next()
	}
}

// GetSchoolLocation falls back to UTC when no middleware set the location.
func GetSchoolLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return time.UTC
	}
	if loc, ok := c.Locals(LocSchoolLoc).(*time.Location); ok && loc != nil {
		return loc
	}
	return time.UTC
}

// ToSchoolTime converts a stored (UTC) time into the school timezone.
func ToSchoolTime(c *fiber.Ctx, t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(GetSchoolLocation(c))
}

func NowInSchool(c *fiber.Ctx) time.Time {
	return time.Now().In(GetSchoolLocation(c))
}

// ParseDate accepts RFC3339, or YYYY-MM-DD read as midnight in the school
// timezone. Blank input yields nil.
func ParseDate(c *fiber.Ctx, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, GetSchoolLocation(c))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
