// Package repository implements the persistence layer over MySQL. Each
// table gets its own repo type holding a *sql.DB. This file defines the
// sentinel errors shared across repositories so handlers can map failure
// modes onto the API's wire messages without string matching.
package repository

import (
	"errors"
	"strings"
)

// ErrUsernameExists is returned when registration hits the unique
// constraint on users.username. Handlers answer "User already exists".
var ErrUsernameExists = errors.New("username already exists")

// ErrSlotExists is returned when add-slot hits the unique (date, time)
// constraint. Handlers answer "Slot already exists".
var ErrSlotExists = errors.New("slot already exists")

// ErrSlotTaken is returned when a booking cannot be made because the slot
// is missing, flagged unavailable, or lost a concurrent race on the
// bookings.slot_id unique key. All three cases collapse into one error on
// purpose: the API answers "Slot already booked" for each, so a caller
// cannot probe which slot ids exist.
var ErrSlotTaken = errors.New("slot already booked")

// ErrBookingNotFound is returned on cancel when no booking matches the
// given slot and username. A booking owned by someone else and a booking
// that never existed are indistinguishable to the caller.
var ErrBookingNotFound = errors.New("booking not found")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062). The driver does not export a typed error for this, so the
// code is matched in the message.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
