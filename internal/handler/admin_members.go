package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/ledger"
)

// ListMembers searches role user members by ?q=.
func (h *AdminHandler) ListMembers(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"members": h.Ledger.SearchMembers(c.QueryParam("q"))})
}

// CreateMember registers a new member.
func (h *AdminHandler) CreateMember(c echo.Context) error {
	var in ledger.MemberInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	m, err := h.Ledger.AddMember(in)
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusCreated, echo.Map{"member": m})
}

// UpdateMember edits member :id.
func (h *AdminHandler) UpdateMember(c echo.Context) error {
	var patch ledger.MemberPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	m, err := h.Ledger.UpdateMember(c.Param("id"), patch)
	if err != nil {
		return failErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"member": m})
}

// DeleteMember removes member :id together with their reservations.
func (h *AdminHandler) DeleteMember(c echo.Context) error {
	if err := h.Ledger.RemoveMember(c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
