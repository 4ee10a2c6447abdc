package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems.  It returns "ok" with a 200 status.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Index lists the sections of the API.
func Index(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{
		"name": "Ximnasio",
		"sections": echo.Map{
			"classes":       "/v1/classes",
			"schedule":      "/v1/slots",
			"facilities":    "/v1/facilities",
			"plans":         "/v1/plans",
			"pricing":       "/v1/pricing",
			"opening_hours": "/v1/opening-hours",
			"contact":       "/v1/contact",
			"login":         "/v1/auth/login",
		},
	})
}

// RedirectHome sends unknown paths back to the index.
func RedirectHome(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}
