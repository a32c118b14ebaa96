package model

import "time"

// Slot is a bookable date/time unit as stored in the `slots` table.
// Date and Time stay strings ("2024-01-01", "09:00") because the API
// treats them as opaque labels; the (Date, Time) pair is unique.
//
// A slot moves between exactly two states: available and booked. Once a
// booking exists the IsAvailable flag is owned by the booking flow: it
// is flipped in the same transaction that inserts or deletes the
// booking row, so the flag and the row can never disagree. Slots are
// never deleted.
//
// Fields:
//  ID          – primary key identifier.
//  Date        – calendar date label.
//  Time        – time-of-day label.
//  IsAvailable – true while no active booking references the slot.
//  CreatedAt   – timestamp when the admin added the slot.
type Slot struct {
	ID          uint64    // slots.id
	Date        string    // slots.date
	Time        string    // slots.time
	IsAvailable bool      // slots.is_available
	CreatedAt   time.Time // slots.created_at
}
