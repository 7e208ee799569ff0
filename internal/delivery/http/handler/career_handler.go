package handler

import (
	"errors"
	"strings"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/domain"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/middleware"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/usecase"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/response"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	CareerHandler interface {
		SubmitQuiz(ctx *fiber.Ctx) error
		GetQuizResult(ctx *fiber.Ctx) error
		Chat(ctx *fiber.Ctx) error
		GetChatHistory(ctx *fiber.Ctx) error
		ResetChat(ctx *fiber.Ctx) error
	}

	careerHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.CareerUsecase
	}
)

func NewCareerHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.CareerUsecase) CareerHandler {
	return &careerHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /quiz
func (h *careerHandler) SubmitQuiz(ctx *fiber.Ctx) error {
	var req entity.QuizRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_SUBMIT_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitQuiz(ctx.UserContext(), middleware.UserID(ctx), req.Answers)
	if err != nil {
		return response.NewFailed(domain.QUIZ_SUBMIT_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_SUBMIT_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/result
func (h *careerHandler) GetQuizResult(ctx *fiber.Ctx) error {
	result, err := h.usecase.GetLatestQuiz(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return response.NewFailed(domain.QUIZ_RESULT_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_RESULT_SUCCESS, result, nil).Send(ctx)
}

// POST /chat
func (h *careerHandler) Chat(ctx *fiber.Ctx) error {
	var req entity.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.NewFailed(domain.CHAT_SEND_FAILED, fiber.NewError(fiber.StatusBadRequest, "Request body is not valid"), h.logger).Send(ctx)
	}

	if strings.TrimSpace(req.Message) == "" {
		return response.NewFailed(domain.CHAT_EMPTY_MESSAGE, fiber.NewError(fiber.StatusBadRequest, usecase.ErrEmptyMessage.Error()), h.logger).Send(ctx)
	}

	result, err := h.usecase.Chat(ctx.UserContext(), middleware.UserID(ctx), req.Message)
	if err != nil {
		msg := domain.CHAT_SEND_FAILED
		if errors.Is(err, usecase.ErrEmptyMessage) {
			msg = domain.CHAT_EMPTY_MESSAGE
		}
		return response.NewFailed(msg, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CHAT_SEND_SUCCESS, result, nil).Send(ctx)
}

// GET /chat/history
func (h *careerHandler) GetChatHistory(ctx *fiber.Ctx) error {
	history, err := h.usecase.GetChatHistory(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return response.NewFailed(domain.CHAT_HISTORY_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CHAT_HISTORY_SUCCESS, history, nil).Send(ctx)
}

// POST /chat/reset
func (h *careerHandler) ResetChat(ctx *fiber.Ctx) error {
	history, err := h.usecase.ResetChat(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return response.NewFailed(domain.CHAT_RESET_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CHAT_RESET_SUCCESS, history, nil).Send(ctx)
}
