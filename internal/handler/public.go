package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
)

// PublicHandler serves the guest-visible catalog and schedule.
type PublicHandler struct {
	Ledger *ledger.Ledger
}

// NewPublicHandler panics if l is nil.
func NewPublicHandler(l *ledger.Ledger) *PublicHandler {
	if l == nil {
		panic("nil ledger passed to NewPublicHandler")
	}
	return &PublicHandler{Ledger: l}
}

// ListClasses returns all classes, or those of ?category=.
func (h *PublicHandler) ListClasses(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return respond(c, http.StatusOK, echo.Map{"classes": h.Ledger.Classes()})
	}
	if !model.ValidCategory(category) {
		return fail(c, http.StatusBadRequest, "unknown category")
	}
	return respond(c, http.StatusOK, echo.Map{"classes": h.Ledger.ClassesByCategory(category)})
}

// GetClass returns one class with its schedule.
func (h *PublicHandler) GetClass(c echo.Context) error {
	cl, found := h.Ledger.Class(c.Param("id"))
	if !found {
		return failErr(c, ledger.ErrClassNotFound)
	}
	slots := h.Ledger.SlotViews(h.Ledger.SlotsForClass(cl.ID))
	return respond(c, http.StatusOK, echo.Map{"class": cl, "slots": slots})
}

// ClassSlots returns the slots of one class.
func (h *PublicHandler) ClassSlots(c echo.Context) error {
	id := c.Param("id")
	if _, found := h.Ledger.Class(id); !found {
		return failErr(c, ledger.ErrClassNotFound)
	}
	return respond(c, http.StatusOK, echo.Map{"slots": h.Ledger.SlotViews(h.Ledger.SlotsForClass(id))})
}

// SlotsOnDate returns the slots of ?date=YYYY-MM-DD, today by default.
func (h *PublicHandler) SlotsOnDate(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = model.FormatDate(time.Now().In(h.Ledger.Location()))
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fail(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return respond(c, http.StatusOK, echo.Map{"date": date, "slots": h.Ledger.SlotViews(h.Ledger.SlotsOnDate(date))})
}

// Facilities lists the gym areas.
func (h *PublicHandler) Facilities(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"facilities": h.Ledger.Catalog().Facilities})
}

// Plans lists the membership plans.
func (h *PublicHandler) Plans(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"plans": h.Ledger.Catalog().Plans})
}

// Pricing lists per-class prices.
func (h *PublicHandler) Pricing(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"pricing": h.Ledger.Catalog().Pricing})
}

// OpeningHours lists the weekly opening hours.
func (h *PublicHandler) OpeningHours(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"opening_hours": h.Ledger.Catalog().Hours})
}

// Contact returns the contact details.
func (h *PublicHandler) Contact(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"contact": h.Ledger.Catalog().Contact})
}
