package middleware // reusable HTTP middleware shared by the route groups

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects its claims into the request context under "user_id",
// "username" and "role". Handlers on protected routes read identity from
// these keys only; usernames arriving in a request body are never
// trusted. The secret must match the one used when issuing tokens.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Login required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Pin the signing method to HMAC; a token signed any other
			// way is rejected before the claims are looked at.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Login required"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Login required"})
			}

			c.Set("user_id", claims["sub"])
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			return next(c)
		}
	}
}

// Username extracts the authenticated username stored by JWTAuth. The
// boolean is false when the middleware did not run or the claim is
// missing.
func Username(c echo.Context) (string, bool) {
	v, ok := c.Get("username").(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
