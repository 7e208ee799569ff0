package route

import (
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/handler"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupCollegeRoute(api fiber.Router, handler handler.CollegeHandler, m *middleware.Middleware) {
	collegeRouter := api.Group("/colleges", m.Authenticate())
	{
		collegeRouter.Get("/", handler.List)
		collegeRouter.Get("/recommended", handler.Recommended)
		collegeRouter.Get("/:id", handler.Detail)
		collegeRouter.Post("/:id/apply", handler.Apply)
	}

	api.Get("/exam-prep", m.Authenticate(), handler.ExamPrep)
	api.Get("/timeline", m.Authenticate(), handler.Timeline)
}
