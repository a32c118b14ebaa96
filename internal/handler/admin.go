package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"apptbook/internal/repository"
)

// AdminHandler serves the operator read endpoints. Route registration
// wraps these in RequireRole("admin"); the handlers themselves only read.
type AdminHandler struct {
	Bookings *repository.BookingRepo
	Slots    *repository.SlotRepo
}

func NewAdminHandler(b *repository.BookingRepo, s *repository.SlotRepo) *AdminHandler {
	if b == nil || s == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Bookings: b, Slots: s}
}

// ListBookings handles GET /admin/bookings: every active booking joined
// with its slot. Failure answers 500 with an empty array, mirroring the
// public listing.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []repository.BookingRow{})
	}
	return c.JSON(http.StatusOK, rows)
}

// Stats handles GET /admin/stats: total slots ever created and currently
// booked slots.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st, err := h.Slots.CountStats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, st)
}
