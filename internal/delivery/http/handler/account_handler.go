package handler

import (
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
	AccountHandler interface {
		Register(ctx *fiber.Ctx) error
		Login(ctx *fiber.Ctx) error
		GetProfile(ctx *fiber.Ctx) error
		UpdateProfile(ctx *fiber.Ctx) error
	}

	accountHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AccountUsecase
	}
)

func NewAccountHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AccountUsecase) AccountHandler {
	return &accountHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /auth/register
func (h *accountHandler) Register(ctx *fiber.Ctx) error {
	var req entity.RegisterRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.Register(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_REGISTER_SUCCESS, result, nil).WithStatus(fiber.StatusCreated).Send(ctx)
}

// POST /auth/login
func (h *accountHandler) Login(ctx *fiber.Ctx) error {
	var req entity.LoginRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.Login(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_LOGIN_SUCCESS, result, nil).Send(ctx)
}

// GET /profile
func (h *accountHandler) GetProfile(ctx *fiber.Ctx) error {
	profile, err := h.usecase.GetProfile(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return response.NewFailed(domain.PROFILE_GET_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROFILE_GET_SUCCESS, profile, nil).Send(ctx)
}

// PUT /profile
func (h *accountHandler) UpdateProfile(ctx *fiber.Ctx) error {
	var req entity.UpdateProfileRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PROFILE_UPDATE_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	profile, err := h.usecase.UpdateProfile(ctx.UserContext(), middleware.UserID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.PROFILE_UPDATE_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROFILE_UPDATE_SUCCESS, profile, nil).Send(ctx)
}
