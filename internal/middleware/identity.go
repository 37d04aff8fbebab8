package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const UserIDKey = "X-User-ID"

// NewIdentityMiddleware stores the caller identity from the X-User-ID
// header, when present, for handlers further down the chain. The header
// is trusted as-is; there is no session or token verification.
func (m *middleware) NewIdentityMiddleware(ctx *fiber.Ctx) error {
	if userID := ctx.Get(UserIDKey); userID != "" {
		ctx.Locals(UserIDKey, userID)
	}
	return ctx.Next()
}

func (m *middleware) GetUserID(ctx *fiber.Ctx) string {
	userID, ok := ctx.Locals(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
