package response

import (
	"errors"
	"testing"

	"github.com/Vickyvkz7/SIH2025/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewFailed(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  any
	}{
		{"fiber client error", fiber.NewError(fiber.StatusNotFound, "college not found"), fiber.StatusNotFound, "college not found"},
		{"fields error", validate.NewFieldsError(map[string]string{"email": "email is required"}), fiber.StatusBadRequest, map[string]string{"email": "email is required"}},
		{"server error hides detail", fiber.NewError(fiber.StatusInternalServerError, "pq: connection refused"), fiber.StatusInternalServerError, nil},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewFailed("failed", tt.err, nil)
			assert.False(t, res.Success)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantError, res.Error)
		})
	}
}

func TestNewSuccessWithStatus(t *testing.T) {
	res := NewSuccess("created", map[string]int{"id": 1}, nil).WithStatus(fiber.StatusCreated)
	assert.True(t, res.Success)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
}
