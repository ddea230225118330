package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"boardapi/docs"
)

// SwaggerUI serves the API docs advertising the host and scheme the client used.
// fallbackHost (APP_HOST) is advertised when the request has no Host header.
func SwaggerUI(fallbackHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs.SwaggerInfo.Host, docs.SwaggerInfo.Schemes = swaggerTarget(
			c.Get(fiber.HeaderHost), c.Get(fiber.HeaderXForwardedProto), c.Protocol(), fallbackHost)
		return swagger.HandlerDefault(c)
	}
}

// swaggerTarget picks the advertised host and scheme. The first X-Forwarded-Proto entry wins over the
// connection protocol.
func swaggerTarget(host, forwardedProto, protocol, fallbackHost string) (string, []string) {
	if host == "" {
		host = fallbackHost
	}
	scheme := protocol
	if forwardedProto != "" {
		scheme = strings.TrimSpace(strings.Split(forwardedProto, ",")[0])
	}
	return host, []string{scheme}
}
