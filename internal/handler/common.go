package handler // handler defines http handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/middleware"
	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/session"
)

// fail writes {"success": false, "error": msg}.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// respond writes {"success": true} merged with body.
func respond(c echo.Context, status int, body echo.Map) error {
	out := echo.Map{"success": true}
	for k, v := range body {
		out[k] = v
	}
	return c.JSON(status, out)
}

// statusFor maps a ledger or session error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrMemberNotFound),
		errors.Is(err, ledger.ErrClassNotFound),
		errors.Is(err, ledger.ErrSlotNotFound),
		errors.Is(err, ledger.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrClassFull),
		errors.Is(err, ledger.ErrAlreadyEnrolled),
		errors.Is(err, ledger.ErrEmailTaken),
		errors.Is(err, ledger.ErrReservationNotActive),
		errors.Is(err, ledger.ErrCapacityTooLow):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidMember),
		errors.Is(err, ledger.ErrInvalidClass),
		errors.Is(err, ledger.ErrInvalidCapacity),
		errors.Is(err, ledger.ErrInvalidSlot):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// failErr writes the response for err.  Unmapped errors are logged and
// reported without detail.
func failErr(c echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "err", err)
		return fail(c, status, "internal error")
	}
	return fail(c, status, err.Error())
}

// getUserID returns the member ID stored by the JWT middleware.
func getUserID(c echo.Context) (string, error) {
	if s, ok := c.Get(middleware.CtxUserID).(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("invalid user_id in context")
}

// currentIdentity returns the identity restored by RequireSession.
func currentIdentity(c echo.Context) (model.Member, bool) {
	m, ok := c.Get(middleware.CtxIdentity).(model.Member)
	return m, ok
}

// currentSession returns the session restored by RequireSession.
func currentSession(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(middleware.CtxSession).(*session.Session)
	return s, ok && s != nil
}
