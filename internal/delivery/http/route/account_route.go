package route

import (
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/handler"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAccountRoute(api fiber.Router, handler handler.AccountHandler, m *middleware.Middleware) {
	authRouter := api.Group("/auth")
	{
		authRouter.Post("/register", handler.Register)
		authRouter.Post("/login", handler.Login)
	}

	profileRouter := api.Group("/profile", m.Authenticate())
	{
		profileRouter.Get("/", handler.GetProfile)
		profileRouter.Put("/", handler.UpdateProfile)
	}
}
