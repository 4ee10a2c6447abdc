package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/session"
)

// Members looks up the current member record.  *ledger.Ledger
// implements it.
type Members interface {
	Member(id string) (model.Member, bool)
}

// RequireSession restores the session named by the token's sid claim.
// A session that was logged out (or expired from storage) is rejected
// with 401 even if the token itself is still valid, and so is one whose
// member has since been removed.  The role and identity placed in the
// context come from the current member record, not from the token or
// the stored session.  It must run after JWTAuth.
func RequireSession(mgr *session.Manager, members Members) echo.MiddlewareFunc {
	if mgr == nil || members == nil {
		panic("nil dependency passed to RequireSession")
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get(CtxSessionID).(string)
			if sid == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "missing session"})
			}
			s := mgr.Open(sid)
			if err := s.Restore(c.Request().Context()); err != nil {
				slog.Error("session: restore failed", "sid", sid, "err", err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "could not load session"})
			}
			m, ok := s.Identity()
			if !ok || m.ID != c.Get(CtxUserID) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "session expired"})
			}
			live, ok := members.Member(m.ID)
			if !ok {
				slog.Info("session: member no longer exists", "sid", sid, "member_id", m.ID)
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "account no longer exists"})
			}
			live.PasswordHash = ""
			c.Set(CtxSession, s)
			c.Set(CtxIdentity, live)
			c.Set(CtxRole, live.Role)
			return next(c)
		}
	}
}
