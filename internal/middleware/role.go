package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces that the authenticated user carries one of the
// given roles in its JWT "role" claim. It assumes JWTAuth ran earlier in
// the chain and stored the claim under "role"; a missing or disallowed
// role yields 403. The admin surface (/add-slot, /admin/*) hangs behind
// RequireRole("admin"), so the role is decided by the server-issued
// token, never by a field in the request body.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Unauthorized"})
			}
			return next(c)
		}
	}
}
