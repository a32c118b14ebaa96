package model

import "time"

// Booking links a user to the slot they reserved. The UNIQUE key on
// SlotID is the mutual-exclusion mechanism for concurrent booking
// attempts: of two simultaneous inserts for the same slot exactly one
// passes the constraint, the other maps to "Slot already booked".
//
// Username is stored denormalized (no foreign key into users) so the
// ledger can be read without a join against credentials.
//
// Fields:
//  ID        – primary key identifier.
//  SlotID    – the reserved slot; at most one booking per slot.
//  Username  – who reserved it.
//  CreatedAt – timestamp of the reservation.
type Booking struct {
	ID        uint64    // bookings.id
	SlotID    uint64    // bookings.slot_id (unique)
	Username  string    // bookings.username
	CreatedAt time.Time // bookings.created_at
}
