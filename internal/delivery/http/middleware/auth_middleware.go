package middleware

import (
	"strings"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/domain"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// UserIDKey is the fiber Locals key holding the authenticated user id.
const UserIDKey = "user_id"

func (m *Middleware) RequestID() fiber.Handler {
	return requestid.New()
}

// Authenticate requires "Authorization: Bearer <jwt>" and stores the
// token's subject under UserIDKey.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization))
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return response.NewFailed(domain.AUTH_UNAUTHORIZED, fiber.NewError(fiber.StatusUnauthorized, "missing bearer token"), m.Log).Send(ctx)
		}

		if m.Tokens == nil {
			return response.NewFailed(domain.AUTH_UNAUTHORIZED, fiber.NewError(fiber.StatusInternalServerError, "token manager not configured"), m.Log).Send(ctx)
		}

		userID, err := m.Tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			m.Log.WithField("request_id", ctx.GetRespHeader(fiber.HeaderXRequestID)).Debug("rejected token: ", err)
			return response.NewFailed(domain.AUTH_UNAUTHORIZED, fiber.NewError(fiber.StatusUnauthorized, err.Error()), m.Log).Send(ctx)
		}

		ctx.Locals(UserIDKey, userID)
		return ctx.Next()
	}
}

// UserID reads the id stored by Authenticate; "" when absent.
func UserID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(UserIDKey).(string)
	return id
}
