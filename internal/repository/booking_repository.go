package repository

import (
	"context"
	"database/sql"
	"strings"
)

// BookingRepo owns the booking ledger and the slots.is_available flag.
// Book and Cancel each run as a single transaction so the flag and the
// booking row can never disagree, even across a crash.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// BookedSlot is a booking joined with its slot. It shapes the
// my-bookings listing and doubles as the return value of Book/Cancel so
// callers can emit events without a second lookup.
type BookedSlot struct {
	SlotID uint64 `json:"slotId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// Book reserves slotID for username. Inside one transaction it locks the
// slot row, inserts the booking and flips availability off.
//
// ErrSlotTaken covers three cases: the slot does not exist, the slot is
// already flagged unavailable, and a concurrent transaction won the
// insert race on the uq_booking_slot unique key. The FOR UPDATE lock
// makes the common sequential case fail fast on the availability check;
// the unique key remains the authority under true concurrency.
func (r *BookingRepo) Book(ctx context.Context, slotID uint64, username string) (BookedSlot, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return BookedSlot{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	bs := BookedSlot{SlotID: slotID}
	var available bool
	err = tx.QueryRowContext(ctx,
		"SELECT date, time, is_available FROM slots WHERE id=? FOR UPDATE",
		slotID).Scan(&bs.Date, &bs.Time, &available)
	if err == sql.ErrNoRows {
		return BookedSlot{}, ErrSlotTaken
	}
	if err != nil {
		return BookedSlot{}, err
	}
	if !available {
		return BookedSlot{}, ErrSlotTaken
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (slot_id, username) VALUES (?,?)", slotID, username); err != nil {
		if isDuplicate(err) {
			return BookedSlot{}, ErrSlotTaken
		}
		return BookedSlot{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE slots SET is_available=0 WHERE id=?", slotID); err != nil {
		return BookedSlot{}, err
	}

	if err := tx.Commit(); err != nil {
		return BookedSlot{}, err
	}
	committed = true
	return bs, nil
}

// Cancel removes username's booking for slotID and reopens the slot, in
// one transaction. ErrBookingNotFound is returned when no booking matches
// both slot and user; whether the booking belongs to someone else or
// never existed is deliberately not distinguished.
func (r *BookingRepo) Cancel(ctx context.Context, slotID uint64, username string) (BookedSlot, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return BookedSlot{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"DELETE FROM bookings WHERE slot_id=? AND username=?", slotID, username)
	if err != nil {
		return BookedSlot{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return BookedSlot{}, err
	}
	if n == 0 {
		return BookedSlot{}, ErrBookingNotFound
	}

	bs := BookedSlot{SlotID: slotID}
	if err := tx.QueryRowContext(ctx,
		"SELECT date, time FROM slots WHERE id=?", slotID).Scan(&bs.Date, &bs.Time); err != nil {
		return BookedSlot{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE slots SET is_available=1 WHERE id=?", slotID); err != nil {
		return BookedSlot{}, err
	}

	if err := tx.Commit(); err != nil {
		return BookedSlot{}, err
	}
	committed = true
	return bs, nil
}

// ListByUser returns the slots a user currently holds, oldest booking
// first. No existence check is made on the username; an unknown user
// simply has no bookings.
func (r *BookingRepo) ListByUser(ctx context.Context, username string) ([]BookedSlot, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	rows, err := r.DB.QueryContext(ctx,
		`SELECT s.id, s.date, s.time
		 FROM bookings b
		 JOIN slots s ON s.id = b.slot_id
		 WHERE b.username = ?
		 ORDER BY b.id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BookedSlot, 0)
	for rows.Next() {
		var bs BookedSlot
		if err := rows.Scan(&bs.SlotID, &bs.Date, &bs.Time); err != nil {
			return nil, err
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}

// BookingRow is a booking joined with its slot for the admin overview.
type BookingRow struct {
	User string `json:"user"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// ListAll returns every active booking with its slot's date and time.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT b.username, s.date, s.time
		 FROM bookings b
		 JOIN slots s ON s.id = b.slot_id
		 ORDER BY b.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BookingRow, 0)
	for rows.Next() {
		var br BookingRow
		if err := rows.Scan(&br.User, &br.Date, &br.Time); err != nil {
			return nil, err
		}
		out = append(out, br)
	}
	return out, rows.Err()
}
