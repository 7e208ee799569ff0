package handler

import (
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/domain"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/usecase"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/response"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ParentsHandler interface {
		Dashboard(ctx *fiber.Ctx) error
		Courses(ctx *fiber.Ctx) error
		Scholarships(ctx *fiber.Ctx) error
		Quotas(ctx *fiber.Ctx) error
		Occupations(ctx *fiber.Ctx) error
	}

	parentsHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ParentsUsecase
	}
)

func NewParentsHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ParentsUsecase) ParentsHandler {
	return &parentsHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /parents/dashboard
func (h *parentsHandler) Dashboard(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.PARENTS_DASHBOARD_SUCCESS, h.usecase.Dashboard(ctx.UserContext()), nil).Send(ctx)
}

// GET /parents/courses
func (h *parentsHandler) Courses(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.PARENTS_COURSES_SUCCESS, h.usecase.Courses(ctx.UserContext()), nil).Send(ctx)
}

// GET /parents/scholarships?category=
func (h *parentsHandler) Scholarships(ctx *fiber.Ctx) error {
	var filter entity.ScholarshipFilter
	if err := h.validator.ParseQueryAndValidate(ctx, &filter); err != nil {
		return response.NewFailed(domain.PARENTS_SCHOLARSHIPS_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PARENTS_SCHOLARSHIPS_SUCCESS, h.usecase.Scholarships(ctx.UserContext(), filter), nil).Send(ctx)
}

// GET /parents/quotas
func (h *parentsHandler) Quotas(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.PARENTS_QUOTAS_SUCCESS, h.usecase.Quotas(ctx.UserContext()), nil).Send(ctx)
}

// GET /parents/occupation
func (h *parentsHandler) Occupations(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.PARENTS_OCCUPATIONS_SUCCESS, h.usecase.Occupations(ctx.UserContext()), nil).Send(ctx)
}
