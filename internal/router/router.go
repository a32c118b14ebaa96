// Package router wires HTTP routes to their handlers and middleware.
// Paths keep the legacy flat shape (/slots, /book/:id, ...) the original
// frontend calls; what changed is the authorization model behind them.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"apptbook/internal/config"
	"apptbook/internal/handler"
	"apptbook/internal/middleware"
	"apptbook/internal/model"
)

// Deps collects everything route registration needs.
type Deps struct {
	Cfg     config.Config
	Redis   *redis.Client // nil disables rate limiting and caching
	Auth    *handler.AuthHandler
	Slot    *handler.SlotHandler
	Booking *handler.BookingHandler
	Admin   *handler.AdminHandler
}

// Register attaches all routes to the Echo instance.
//
// Three tiers:
//   - public: health, register/login/refresh/logout and the cached slot
//     listing; no token required.
//   - user: booking operations and /me; any valid access token.
//   - admin: add-slot and the operator reads; token with role "admin".
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	// Auth endpoints carry the rate limiter: the only anonymous writes,
	// and the only place bcrypt runs per request.
	rl := middleware.RateLimit(config.LoadRateLimitConfig(), d.Redis)
	e.POST("/register", d.Auth.Register, rl)
	e.POST("/login", d.Auth.Login, rl)
	e.POST("/refresh", d.Auth.Refresh)
	e.POST("/logout", d.Auth.Logout)

	// Public slot listing, served through the response cache.
	e.GET("/slots", d.Slot.ListSlots, middleware.CacheGET(config.LoadCacheConfig(), d.Redis))

	// Any authenticated user.
	user := e.Group("")
	user.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	user.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	user.GET("/me", d.Auth.Me)
	user.POST("/book/:id", d.Booking.Book)
	user.POST("/cancel-booking", d.Booking.Cancel)
	user.GET("/my-bookings/:username", d.Booking.MyBookings)

	// Admin only. The legacy client used to send its role in the body;
	// here the JWT role claim is the sole authority.
	admin := e.Group("")
	admin.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/add-slot", d.Slot.AddSlot)
	admin.GET("/admin/bookings", d.Admin.ListBookings)
	admin.GET("/admin/stats", d.Admin.Stats)
}
