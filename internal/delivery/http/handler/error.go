package handler

import (
	"errors"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/usecase"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps usecase errors to HTTP status codes.
func statusFor(err error) int {
	var fieldsErr *validate.FieldsError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fieldsErr):
		return fiber.StatusBadRequest
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, usecase.ErrPasswordMismatch):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrCollegeNotFound),
		errors.Is(err, usecase.ErrQuizNotTaken):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// asFiberError keeps field errors intact so the response lists each field.
func asFiberError(err error) error {
	var fieldsErr *validate.FieldsError
	if errors.As(err, &fieldsErr) {
		return fieldsErr
	}
	return fiber.NewError(statusFor(err), err.Error())
}
