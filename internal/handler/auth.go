package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/config"
	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/session"
	"github.com/ximnasio/gym-booking/internal/utils"
)

// AuthHandler bundles dependencies for auth and profile endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Sessions *session.Manager
	Ledger   *ledger.Ledger
}

// NewAuthHandler panics if a dependency is nil.
func NewAuthHandler(cfg config.Config, sessions *session.Manager, l *ledger.Ledger) *AuthHandler {
	if sessions == nil || l == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Sessions: sessions, Ledger: l}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Login checks the credentials after the configured delay, opens a new
// session and returns an access token bound to it.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email/password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sid := session.NewID()
	m, err := h.Sessions.Open(sid).Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			slog.Info("auth_event", "event", "login_failed", "ip", c.RealIP())
			return fail(c, http.StatusUnauthorized, err.Error())
		}
		slog.Error("auth: login failed", "err", err)
		return fail(c, http.StatusInternalServerError, "login failed")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, m.ID, m.Role, sid, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "issue access failed")
	}
	slog.Info("auth_event", "event", "login", "member_id", m.ID, "role", m.Role)
	return respond(c, http.StatusOK, echo.Map{
		"user":   m,
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout ends the current session.  The access token stops working even
// before it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "not logged in")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := s.Logout(ctx); err != nil {
		slog.Error("auth: logout failed", "err", err)
		return fail(c, http.StatusInternalServerError, "logout failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current identity.
func (h *AuthHandler) Me(c echo.Context) error {
	m, ok := currentIdentity(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "not logged in")
	}
	return respond(c, http.StatusOK, echo.Map{"user": m})
}

// UpdateMe edits the member's own profile.  Role and membership fields
// are managed by admins and ignored here.  The change is applied to the
// ledger first and then to the session identity.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	s, ok := currentSession(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "not logged in")
	}
	var patch ledger.MemberPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	patch.Role, patch.Tier, patch.TierExpiresAt = nil, nil, nil

	if _, err := h.Ledger.UpdateMember(uid, patch); err != nil {
		return failErr(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	m, _, err := s.UpdateIdentity(ctx, patch)
	if err != nil {
		slog.Error("auth: persist identity failed", "member_id", uid, "err", err)
		return fail(c, http.StatusInternalServerError, "update failed")
	}
	return respond(c, http.StatusOK, echo.Map{"user": m})
}
