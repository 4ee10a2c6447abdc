package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/ximnasio/gym-booking/internal/handler"
	"github.com/ximnasio/gym-booking/internal/middleware"
	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/session"
)

// Middleware goes on each route. A group created with middleware gets an
// echo catch-all that answers unknown paths before the redirect.

// RegisterRoutes registers the index, the health check and the redirect
// of unknown paths to the index.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)
	e.RouteNotFound("/*", handler.RedirectHome)
}

// RegisterAuth registers login (behind loginLimit) and the session
// endpoints that need a live session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, sessions *session.Manager, loginLimit echo.MiddlewareFunc) {
	e.POST("/v1/auth/login", a.Login, loginLimit)

	member := memberChain(jwtSecret, sessions, a.Ledger)
	e.POST("/v1/auth/logout", a.Logout, member...)
	e.GET("/v1/me", a.Me, member...)
	e.PATCH("/v1/me", a.UpdateMe, member...)
}

// RegisterPublic registers the guest browse endpoints.  The static gym
// catalog sits behind cache.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.GET("/classes", p.ListClasses)
	g.GET("/classes/:id", p.GetClass)
	g.GET("/classes/:id/slots", p.ClassSlots)
	g.GET("/slots", p.SlotsOnDate)

	g.GET("/facilities", p.Facilities, cache)
	g.GET("/plans", p.Plans, cache)
	g.GET("/pricing", p.Pricing, cache)
	g.GET("/opening-hours", p.OpeningHours, cache)
	g.GET("/contact", p.Contact, cache)
}

// RegisterMember registers booking endpoints for any logged-in member.
func RegisterMember(e *echo.Echo, h *handler.MemberHandler, jwtSecret string, sessions *session.Manager) {
	mw := memberChain(jwtSecret, sessions, h.Ledger)
	g := e.Group("/v1")
	g.GET("/me/dashboard", h.Dashboard, mw...)
	g.GET("/my-reservations", h.MyReservations, mw...)
	g.POST("/slots/:id/reservations", h.Book, mw...)
	g.DELETE("/reservations/:id", h.Cancel, mw...)
}

// RegisterAdmin registers the admin endpoints under /v1/admin.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, sessions *session.Manager) {
	mw := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireSession(sessions, h.Ledger),
		middleware.RequireRole(model.RoleAdmin),
	}
	g := e.Group("/v1/admin")
	g.GET("/summary", h.Summary, mw...)
	g.GET("/reservations", h.Reservations, mw...)

	g.GET("/members", h.ListMembers, mw...)
	g.POST("/members", h.CreateMember, mw...)
	g.PATCH("/members/:id", h.UpdateMember, mw...)
	g.DELETE("/members/:id", h.DeleteMember, mw...)

	g.POST("/classes", h.CreateClass, mw...)
	g.PATCH("/classes/:id", h.UpdateClass, mw...)
	g.DELETE("/classes/:id", h.DeleteClass, mw...)

	g.POST("/slots", h.CreateSlot, mw...)
	g.PATCH("/slots/:id", h.UpdateSlot, mw...)
	g.DELETE("/slots/:id", h.DeleteSlot, mw...)
}

func memberChain(jwtSecret string, sessions *session.Manager, members middleware.Members) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireSession(sessions, members),
		middleware.RequireRole(model.RoleUser, model.RoleAdmin),
	}
}
