package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/queue"
	"github.com/ximnasio/gym-booking/internal/service"
)

// MemberHandler serves a logged-in member's dashboard and bookings.
type MemberHandler struct {
	Ledger    *ledger.Ledger
	Publisher service.Publisher
	Now       func() time.Time
}

// NewMemberHandler panics if a dependency is nil.
func NewMemberHandler(l *ledger.Ledger, pub service.Publisher) *MemberHandler {
	if l == nil || pub == nil {
		panic("nil dependency passed to NewMemberHandler")
	}
	return &MemberHandler{Ledger: l, Publisher: pub, Now: time.Now}
}

// Dashboard returns the member summary.
func (h *MemberHandler) Dashboard(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	sum, err := h.Ledger.MemberSummary(uid, h.Now())
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"summary": sum})
}

// MyReservations returns the member's reservation history.
func (h *MemberHandler) MyReservations(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	return respond(c, http.StatusOK, echo.Map{"reservations": h.Ledger.MemberHistory(uid)})
}

// Book reserves a place in slot :id for the current member.
func (h *MemberHandler) Book(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	r, err := h.Ledger.CreateReservation(uid, c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	h.emit(queue.EventReservationConfirmed, r, 0)
	return respond(c, http.StatusCreated, echo.Map{"reservation": r})
}

// Cancel cancels reservation :id.  Members may cancel only their own
// reservations; someone else's is reported as not found.  Admins may
// cancel any.
func (h *MemberHandler) Cancel(c echo.Context) error {
	me, ok := currentIdentity(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id := c.Param("id")
	r, found := h.Ledger.Reservation(id)
	if !found || (r.MemberID != me.ID && !me.IsAdmin()) {
		return failErr(c, ledger.ErrReservationNotFound)
	}
	out, err := h.Ledger.CancelReservation(id)
	if err != nil {
		return failErr(c, err)
	}
	h.emit(queue.EventReservationCancelled, out.Reservation, out.Penalty)

	body := echo.Map{"reservation": out.Reservation, "penalty": out.Penalty}
	if out.Warning != "" {
		body["warning"] = out.Warning
	}
	return respond(c, http.StatusOK, body)
}

// emit publishes the event in the background.  Failures are logged by
// the publisher and never affect the response.
func (h *MemberHandler) emit(kind string, r model.Reservation, penalty float64) {
	ev := queue.ReservationEvent{
		Type:          kind,
		ReservationID: r.ID,
		MemberID:      r.MemberID,
		SlotID:        r.SlotID,
		Price:         r.PricePaid,
		Penalty:       penalty,
		OccurredAt:    h.Now().UTC().Format(time.RFC3339),
	}
	if s, ok := h.Ledger.Slot(r.SlotID); ok {
		ev.ClassID, ev.Date, ev.StartTime = s.ClassID, s.Date, s.StartTime
		if cl, ok := h.Ledger.Class(s.ClassID); ok {
			ev.ClassName = cl.Name
		}
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Publisher.Publish(ctx, ev); err != nil {
			slog.Debug("event publish skipped", "type", kind, "err", err)
		}
	}()
}
