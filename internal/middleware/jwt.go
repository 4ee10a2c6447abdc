package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/utils"
)

// Context keys set by the authentication middleware.
const (
	CtxUserID    = "user_id"
	CtxRole      = "role"
	CtxSessionID = "sid"
	CtxSession   = "session"
	CtxIdentity  = "identity"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the subject, role and session ID claims into the request
// context.  Handlers read them via c.Get(CtxUserID) and friends.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "invalid token"})
			}

			c.Set(CtxUserID, claims.MemberID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxSessionID, claims.SessionID)
			return next(c)
		}
	}
}
