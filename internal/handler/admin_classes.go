package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/ledger"
)

// CreateClass adds a class to the catalog.
func (h *AdminHandler) CreateClass(c echo.Context) error {
	var in ledger.ClassInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	cl, err := h.Ledger.AddClass(in)
	if err != nil {
		return failErr(c, err)
	}
	h.catalogChanged(c)
	return respond(c, http.StatusCreated, echo.Map{"class": cl})
}

// UpdateClass edits class :id.
func (h *AdminHandler) UpdateClass(c echo.Context) error {
	var patch ledger.ClassPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	cl, err := h.Ledger.UpdateClass(c.Param("id"), patch)
	if err != nil {
		return failErr(c, err)
	}
	h.catalogChanged(c)
	return respond(c, http.StatusOK, echo.Map{"class": cl})
}

// DeleteClass removes class :id with its slots.
func (h *AdminHandler) DeleteClass(c echo.Context) error {
	if err := h.Ledger.RemoveClass(c.Param("id")); err != nil {
		return failErr(c, err)
	}
	h.catalogChanged(c)
	return c.NoContent(http.StatusNoContent)
}

// CreateSlot adds a schedule slot.
func (h *AdminHandler) CreateSlot(c echo.Context) error {
	var in ledger.SlotInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	s, err := h.Ledger.AddScheduleSlot(in)
	if err != nil {
		return failErr(c, err)
	}
	h.catalogChanged(c)
	return respond(c, http.StatusCreated, echo.Map{"slot": s})
}

// UpdateSlot edits slot :id.
func (h *AdminHandler) UpdateSlot(c echo.Context) error {
	var patch ledger.SlotPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	s, err := h.Ledger.UpdateScheduleSlot(c.Param("id"), patch)
	if err != nil {
		return failErr(c, err)
	}
	h.catalogChanged(c)
	return respond(c, http.StatusOK, echo.Map{"slot": s})
}

// DeleteSlot removes slot :id and cancels its reservations.
func (h *AdminHandler) DeleteSlot(c echo.Context) error {
	if err := h.Ledger.RemoveScheduleSlot(c.Param("id")); err != nil {
		return failErr(c, err)
	}
	h.catalogChanged(c)
	return c.NoContent(http.StatusNoContent)
}
