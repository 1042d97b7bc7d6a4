package middlewares

import "github.com/gofiber/fiber/v2"

// WithTrustedProxies reads the client IP from X-Forwarded-For only when the
// peer is one of the given proxies. With no proxies the header is ignored,
// so c.IP() is always the socket address.
func WithTrustedProxies(cfg fiber.Config, proxies []string) fiber.Config {
	if len(proxies) == 0 {
		cfg.ProxyHeader = ""
		cfg.EnableTrustedProxyCheck = false
		cfg.TrustedProxies = nil
		return cfg
	}
	cfg.ProxyHeader = fiber.HeaderXForwardedFor
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = proxies
	return cfg
}
