package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"apptbook/internal/middleware"
	"apptbook/internal/queue"
	"apptbook/internal/repository"
	queue_publisher "apptbook/internal/service"
)

// BookingHandler serves the booking ledger endpoints. All routes sit
// behind JWTAuth, so the acting username always comes from verified
// token claims; a username in the request body or path is never the
// authority.
type BookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewBookingHandler(b *repository.BookingRepo) *BookingHandler {
	if b == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b}
}

type cancelReq struct {
	SlotID uint64 `json:"slotId"`
}

// Book handles POST /book/:id. A slot that is missing, unavailable or
// lost to a concurrent booking all answer the same "Slot already booked"
// so callers cannot probe slot existence. An unparseable id falls into
// the same bucket, since it denotes a slot that cannot exist.
func (h *BookingHandler) Book(c echo.Context) error {
	username, ok := middleware.Username(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Login required"})
	}
	slotID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || slotID == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "Slot already booked"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booked, err := h.Bookings.Book(ctx, slotID, username)
	if err != nil {
		if err == repository.ErrSlotTaken {
			return c.JSON(http.StatusOK, echo.Map{"message": "Slot already booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}

	// Fire-and-forget: the booking is committed, a broker outage only
	// costs the audit log line.
	go func(ev queue.BookingEvent) {
		pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishBookingEvent(pctx, ev)
	}(queue.BookingEvent{
		Action:   queue.ActionConfirmed,
		SlotID:   booked.SlotID,
		Date:     booked.Date,
		Time:     booked.Time,
		Username: username,
		At:       time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Booking confirmed"})
}

// Cancel handles POST /cancel-booking. A booking that does not exist and
// a booking owned by another user both answer "Unauthorized cancel
// attempt"; cancelling twice therefore fails the second time.
func (h *BookingHandler) Cancel(c echo.Context) error {
	username, ok := middleware.Username(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Login required"})
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil || req.SlotID == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "Invalid request"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cancelled, err := h.Bookings.Cancel(ctx, req.SlotID, username)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusOK, echo.Map{"message": "Unauthorized cancel attempt"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}

	go func(ev queue.BookingEvent) {
		pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishBookingEvent(pctx, ev)
	}(queue.BookingEvent{
		Action:   queue.ActionCancelled,
		SlotID:   cancelled.SlotID,
		Date:     cancelled.Date,
		Time:     cancelled.Time,
		Username: username,
		At:       time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Booking cancelled"})
}

// MyBookings handles GET /my-bookings/:username. The path parameter is
// kept for the legacy client but must match the token's username; other
// users' ledgers are not readable.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	username, ok := middleware.Username(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Login required"})
	}
	if p := c.Param("username"); p != "" && p != username {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	slots, err := h.Bookings.ListByUser(ctx, username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []repository.BookedSlot{})
	}
	return c.JSON(http.StatusOK, slots)
}
