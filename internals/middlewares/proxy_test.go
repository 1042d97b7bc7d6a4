package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientIP(t *testing.T, proxies []string) string {
	t.Helper()
	app := fiber.New(WithTrustedProxies(fiber.Config{}, proxies))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(c.IP()) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.9")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestForwardedForIgnoredWithoutTrustedProxies(t *testing.T) {
	assert.NotEqual(t, "203.0.113.9", clientIP(t, nil))
}

func TestForwardedForHonouredFromTrustedProxy(t *testing.T) {
	assert.Equal(t, "203.0.113.9", clientIP(t, []string{"0.0.0.0/0"}))
}

func TestForwardedForIgnoredFromUntrustedPeer(t *testing.T) {
	assert.NotEqual(t, "203.0.113.9", clientIP(t, []string{"10.0.0.0/8"}))
}
