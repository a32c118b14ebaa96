package repository

import (
	"context"
	"database/sql"
	"strings"

	"apptbook/internal/model"
)

// SlotRepo persists bookable slots. Availability flips live in
// BookingRepo because they must share a transaction with the booking
// row; this repo owns slot identity (date, time) only.
type SlotRepo struct{ DB *sql.DB }

func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{DB: db} }

// Create inserts a new slot, available by default. The unique (date,
// time) key turns duplicate submissions into ErrSlotExists.
func (r *SlotRepo) Create(ctx context.Context, date, timeOfDay string) (uint64, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO slots (date, time, is_available) VALUES (?,?,1)",
		date, timeOfDay)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrSlotExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListAvailable returns every slot that is currently open for booking,
// in insertion order. The result is never nil so handlers can serialize
// it straight to a JSON array.
func (r *SlotRepo) ListAvailable(ctx context.Context) ([]model.Slot, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,date,time,is_available,created_at FROM slots WHERE is_available=1 ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Slot, 0)
	for rows.Next() {
		var s model.Slot
		if err := rows.Scan(&s.ID, &s.Date, &s.Time, &s.IsAvailable, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Stats aggregates operator counters: total slots ever created and the
// number of active bookings.
type Stats struct {
	TotalSlots  uint64 `json:"totalSlots"`
	BookedSlots uint64 `json:"bookedSlots"`
}

// CountStats returns slot/booking totals for the admin dashboard.
func (r *SlotRepo) CountStats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM slots").Scan(&st.TotalSlots); err != nil {
		return Stats{}, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings").Scan(&st.BookedSlots); err != nil {
		return Stats{}, err
	}
	return st, nil
}
