// Package queue defines message payloads exchanged over the message broker.
package queue

// Booking lifecycle actions carried in BookingEvent.Action.
const (
	ActionConfirmed = "confirmed"
	ActionCancelled = "cancelled"
)

// BookingEvent is published to the booking.events queue whenever a
// booking is confirmed or cancelled. It carries enough for downstream
// consumers to log or notify without querying the primary database.
type BookingEvent struct {
	Action   string `json:"action"` // "confirmed" or "cancelled"
	SlotID   uint64 `json:"slot_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Username string `json:"username"`
	At       string `json:"at"` // RFC3339 UTC timestamp of the action
}
