package route

import (
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/handler"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api            *fiber.App
	Middleware     *middleware.Middleware
	AccountHandler handler.AccountHandler
	CareerHandler  handler.CareerHandler
	CollegeHandler handler.CollegeHandler
	ParentsHandler handler.ParentsHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(c.Middleware.RequestID())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	api := c.Api.Group("/api")
	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	SetupAccountRoute(api, c.AccountHandler, c.Middleware)
	SetupCareerRoute(api, c.CareerHandler, c.Middleware)
	SetupCollegeRoute(api, c.CollegeHandler, c.Middleware)
	SetupParentsRoute(api, c.ParentsHandler)
}
