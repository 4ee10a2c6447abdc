package middleware

import "github.com/labstack/echo/v4"

// currentUserID returns the member ID stored by JWTAuth, or "anon" for
// unauthenticated requests.  Rate limit and cache keys use it.
func currentUserID(c echo.Context) string {
	if s, ok := c.Get(CtxUserID).(string); ok && s != "" {
		return s
	}
	return "anon"
}
