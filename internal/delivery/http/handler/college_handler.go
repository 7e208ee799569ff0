package handler

import (
	"strconv"
	"time"

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
	CollegeHandler interface {
		List(ctx *fiber.Ctx) error
		Detail(ctx *fiber.Ctx) error
		Apply(ctx *fiber.Ctx) error
		Recommended(ctx *fiber.Ctx) error
		ExamPrep(ctx *fiber.Ctx) error
		Timeline(ctx *fiber.Ctx) error
	}

	collegeHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.CollegeUsecase
		now       func() time.Time
	}
)

func NewCollegeHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.CollegeUsecase) CollegeHandler {
	return &collegeHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
		now:       time.Now,
	}
}

// GET /colleges?search=&district=&type=&page=1&per_page=6
func (h *collegeHandler) List(ctx *fiber.Ctx) error {
	var filter entity.CollegeFilter
	if err := h.validator.ParseQueryAndValidate(ctx, &filter); err != nil {
		return response.NewFailed(domain.COLLEGE_LIST_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	page, meta, err := h.usecase.List(ctx.UserContext(), filter)
	if err != nil {
		return response.NewFailed(domain.COLLEGE_LIST_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.COLLEGE_LIST_SUCCESS, page, meta).Send(ctx)
}

// GET /colleges/:id
func (h *collegeHandler) Detail(ctx *fiber.Ctx) error {
	id, err := collegeID(ctx)
	if err != nil {
		return response.NewFailed(domain.COLLEGE_DETAIL_FAILED, err, h.logger).Send(ctx)
	}

	detail, err := h.usecase.Detail(ctx.UserContext(), id, middleware.UserID(ctx))
	if err != nil {
		return response.NewFailed(domain.COLLEGE_DETAIL_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.COLLEGE_DETAIL_SUCCESS, detail, nil).Send(ctx)
}

// POST /colleges/:id/apply
func (h *collegeHandler) Apply(ctx *fiber.Ctx) error {
	id, err := collegeID(ctx)
	if err != nil {
		return response.NewFailed(domain.COLLEGE_APPLY_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Apply(ctx.UserContext(), middleware.UserID(ctx), id)
	if err != nil {
		return response.NewFailed(domain.COLLEGE_APPLY_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	msg := domain.COLLEGE_APPLY_SUCCESS
	if result.AlreadyApplied {
		msg = domain.COLLEGE_ALREADY_APPLIED
	}
	return response.NewSuccess(msg, result, nil).Send(ctx)
}

// GET /colleges/recommended
func (h *collegeHandler) Recommended(ctx *fiber.Ctx) error {
	result, err := h.usecase.Recommended(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		msg := domain.COLLEGE_RECOMMENDED_FAILED
		if statusFor(err) == fiber.StatusNotFound {
			msg = domain.QUIZ_RESULT_FAILED
		}
		return response.NewFailed(msg, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.COLLEGE_RECOMMENDED_SUCCESS, result, nil).Send(ctx)
}

// GET /exam-prep
func (h *collegeHandler) ExamPrep(ctx *fiber.Ctx) error {
	result, err := h.usecase.ExamPrep(ctx.UserContext(), middleware.UserID(ctx), h.now())
	if err != nil {
		return response.NewFailed(domain.EXAM_PREP_FAILED, asFiberError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.EXAM_PREP_SUCCESS, result, nil).Send(ctx)
}

// GET /timeline
func (h *collegeHandler) Timeline(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.TIMELINE_SUCCESS, h.usecase.Timeline(ctx.UserContext()), nil).Send(ctx)
}

func collegeID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid college id")
	}
	return uint(id), nil
}
