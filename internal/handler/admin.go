package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
)

// AdminHandler serves the admin dashboard and the member, class and
// schedule management endpoints.
type AdminHandler struct {
	Ledger *ledger.Ledger
	Now    func() time.Time
	// Invalidate, when set, drops cached public responses after a class
	// or schedule change.
	Invalidate func(ctx context.Context) error
}

// NewAdminHandler panics if l is nil.  invalidate may be nil.
func NewAdminHandler(l *ledger.Ledger, invalidate func(ctx context.Context) error) *AdminHandler {
	if l == nil {
		panic("nil ledger passed to NewAdminHandler")
	}
	return &AdminHandler{Ledger: l, Now: time.Now, Invalidate: invalidate}
}

// Summary returns the admin dashboard figures.
func (h *AdminHandler) Summary(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"summary": h.Ledger.AdminSummary(h.Now())})
}

// Reservations lists every reservation, optionally filtered by
// ?member_id= and ?status=.
func (h *AdminHandler) Reservations(c echo.Context) error {
	var list []model.Reservation
	if mid := c.QueryParam("member_id"); mid != "" {
		list = h.Ledger.ReservationsForMember(mid)
	} else {
		list = h.Ledger.Reservations()
	}
	if status := c.QueryParam("status"); status != "" {
		filtered := list[:0]
		for _, r := range list {
			if r.Status == status {
				filtered = append(filtered, r)
			}
		}
		list = filtered
	}
	return respond(c, http.StatusOK, echo.Map{"reservations": list})
}

func (h *AdminHandler) catalogChanged(c echo.Context) {
	if h.Invalidate == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Invalidate(ctx); err != nil {
		slog.Warn("cache invalidation failed", "err", err)
	}
}
