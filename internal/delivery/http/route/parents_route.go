package route

import (
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

// Parent guidance pages are public.
func SetupParentsRoute(api fiber.Router, handler handler.ParentsHandler) {
	parentsRouter := api.Group("/parents")
	{
		parentsRouter.Get("/dashboard", handler.Dashboard)
		parentsRouter.Get("/courses", handler.Courses)
		parentsRouter.Get("/scholarships", handler.Scholarships)
		parentsRouter.Get("/quotas", handler.Quotas)
		parentsRouter.Get("/occupation", handler.Occupations)
	}
}
