package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	allowCredentials := false
	if m != nil && m.Config != nil {
		if v := m.Config.GetString("api.cors.origins"); v != "" {
			allowOrigins = v
		}
		// fiber refuses credentials with a wildcard origin
		allowCredentials = allowOrigins != "*" && m.Config.GetBool("api.cors.credentials")
	}

	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Content-Length, Accept-Encoding, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowOrigins:     allowOrigins,
		AllowCredentials: allowCredentials,
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
	})
}
