package route

import (
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/handler"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupCareerRoute(api fiber.Router, handler handler.CareerHandler, m *middleware.Middleware) {
	quizRouter := api.Group("/quiz", m.Authenticate())
	{
		quizRouter.Post("/", handler.SubmitQuiz)
		quizRouter.Get("/result", handler.GetQuizResult)
	}

	chatRouter := api.Group("/chat", m.Authenticate())
	{
		chatRouter.Post("/", handler.Chat)
		chatRouter.Get("/history", handler.GetChatHistory)
		chatRouter.Post("/reset", handler.ResetChat)
	}
}
