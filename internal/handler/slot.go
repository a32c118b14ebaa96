package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"apptbook/internal/repository"
)

// SlotHandler exposes the slot registry: the public availability listing
// and the admin-only add-slot operation.
type SlotHandler struct {
	Slots *repository.SlotRepo
}

func NewSlotHandler(s *repository.SlotRepo) *SlotHandler {
	if s == nil {
		panic("nil repository passed to NewSlotHandler")
	}
	return &SlotHandler{Slots: s}
}

// slotItem is the public shape of a slot. Internal timestamps are not
// exposed.
type slotItem struct {
	ID          uint64 `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"is_available"`
}

type addSlotReq struct {
	Date string `json:"date"`
	Time string `json:"time"`
	// Role is what the legacy client sends; authorization comes from the
	// JWT role claim via middleware, so the field is accepted and ignored.
	Role string `json:"role"`
}

// ListSlots handles GET /slots. It returns every currently available
// slot as a flat JSON array; on a database failure it answers 500 with
// an empty array so list-rendering clients never see a non-array body.
func (h *SlotHandler) ListSlots(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	slots, err := h.Slots.ListAvailable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []slotItem{})
	}
	out := make([]slotItem, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotItem{ID: s.ID, Date: s.Date, Time: s.Time, IsAvailable: s.IsAvailable})
	}
	return c.JSON(http.StatusOK, out)
}

// AddSlot handles POST /add-slot (admin only, enforced by middleware).
// Missing fields and duplicate (date, time) pairs answer 200 with a
// descriptive message, matching the API's validation conventions.
func (h *SlotHandler) AddSlot(c echo.Context) error {
	var req addSlotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "Date and time required"})
	}
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	if req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusOK, echo.Map{"message": "Date and time required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Slots.Create(ctx, req.Date, req.Time); err != nil {
		if err == repository.ErrSlotExists {
			return c.JSON(http.StatusOK, echo.Map{"message": "Slot already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Slot added"})
}
