package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ktanaka99/movie-reservation/internal/booking"
	"github.com/ktanaka99/movie-reservation/internal/model"
)

// ErrReservationNotFound indicates that a reservation was not located in
// the DB.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides CRUD operations for reservations and their
// seats.  A reservation groups one or more seat labels for a showtime
// under a single purchaser; the labels live in the reservation_seats
// table.  Rows are never hard-deleted: cancellation flips the status to
// 'cancelled' and stamps cancelled_at, leaving every other field intact.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning the reservation and reservation_seats tables.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, movie_id, movie_title, showtime_id, show_time, show_date,
	name, phone, ticket_type, number_of_tickets, unit_price, total_price,
	status, user_id, created_at, cancelled_at`

func scanReservation(row interface{ Scan(...any) error }, res *model.Reservation) error {
	var cancelledAt sql.NullTime
	err := row.Scan(
		&res.ID, &res.MovieID, &res.MovieTitle, &res.ShowtimeID, &res.Showtime, &res.Date,
		&res.Name, &res.Phone, &res.TicketType, &res.NumberOfTickets, &res.UnitPrice, &res.TotalPrice,
		&res.Status, &res.UserID, &res.CreatedAt, &cancelledAt,
	)
	if err != nil {
		return err
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time
		res.CancelledAt = &t
	}
	return nil
}

// CreateTx inserts a reservation and its seat rows within the scope of an
// existing transaction.  It populates the generated ID and timestamps on
// the provided record.  The caller must commit or roll back.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations
		(movie_id, movie_title, showtime_id, show_time, show_date, name, phone,
		 ticket_type, number_of_tickets, unit_price, total_price, status, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		res.MovieID, res.MovieTitle, res.ShowtimeID, res.Showtime, res.Date, res.Name, res.Phone,
		res.TicketType, res.NumberOfTickets, res.UnitPrice, res.TotalPrice, model.ReservationActive, res.UserID)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	if err := r.replaceSeatsTx(ctx, tx, res.ID, res.SelectedSeats); err != nil {
		return err
	}
	// Query back the row to populate status and timestamps set by the DB.
	const sel = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	return scanReservation(tx.QueryRowContext(ctx, sel, res.ID), res)
}

// UpdateTx overwrites a reservation's ticket fields and replaces its seat
// rows within the provided transaction.  Ownership and status checks are
// the caller's responsibility (via GetByIDForUser before the edit).
func (r *ReservationRepo) UpdateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `UPDATE reservations
		SET ticket_type = ?, number_of_tickets = ?, unit_price = ?, total_price = ?
		WHERE id = ? AND status = ?`
	result, err := tx.ExecContext(ctx, q,
		res.TicketType, res.NumberOfTickets, res.UnitPrice, res.TotalPrice,
		res.ID, model.ReservationActive)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		// Row may exist with identical values; only fail when it is gone
		// or no longer active.
		var status string
		err := tx.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = ?`, res.ID).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReservationNotFound
		}
		if err != nil {
			return err
		}
		if status != model.ReservationActive {
			return ErrConflict
		}
	}
	return r.replaceSeatsTx(ctx, tx, res.ID, res.SelectedSeats)
}

// replaceSeatsTx swaps the full seat set of a reservation.
func (r *ReservationRepo) replaceSeatsTx(ctx context.Context, tx *sql.Tx, reservationID uint64, seats []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM reservation_seats WHERE reservation_id = ?`, reservationID); err != nil {
		return err
	}
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO reservation_seats (reservation_id, seat_label) VALUES `
	args := make([]any, 0, len(seats)*2)
	for i, seat := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, reservationID, seat)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// SeatClaimsTx loads every reservation's claim on the given showtime,
// including its status, inside the provided transaction.  The booking
// package aggregates the claims into the blocked-seat set; fetching
// within the same transaction as the subsequent insert narrows the window
// for two bookings grabbing one seat.
func (r *ReservationRepo) SeatClaimsTx(ctx context.Context, tx *sql.Tx, showtimeID uint64) ([]booking.SeatClaim, error) {
	const q = `SELECT res.id, res.status, rs.seat_label
	           FROM reservations res
	           JOIN reservation_seats rs ON rs.reservation_id = res.id
	           WHERE res.showtime_id = ?
	           ORDER BY res.id, rs.seat_label`
	rows, err := tx.QueryContext(ctx, q, showtimeID)
	if err != nil {
		return nil, err
	}
	return collectClaims(rows)
}

// SeatClaims is the non-transactional variant used by the availability
// endpoint.  A query failure must surface as a hard error to the caller;
// the seat map is never rendered from guessed data.
func (r *ReservationRepo) SeatClaims(ctx context.Context, showtimeID uint64) ([]booking.SeatClaim, error) {
	const q = `SELECT res.id, res.status, rs.seat_label
	           FROM reservations res
	           JOIN reservation_seats rs ON rs.reservation_id = res.id
	           WHERE res.showtime_id = ?
	           ORDER BY res.id, rs.seat_label`
	rows, err := r.db.QueryContext(ctx, q, showtimeID)
	if err != nil {
		return nil, err
	}
	return collectClaims(rows)
}

func collectClaims(rows *sql.Rows) ([]booking.SeatClaim, error) {
	defer rows.Close()
	var claims []booking.SeatClaim
	index := make(map[uint64]int)
	for rows.Next() {
		var (
			id     uint64
			status string
			seat   string
		)
		if err := rows.Scan(&id, &status, &seat); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			i = len(claims)
			index[id] = i
			claims = append(claims, booking.SeatClaim{ReservationID: id, Status: status})
		}
		claims[i].Seats = append(claims[i].Seats, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return claims, nil
}

// GetByIDForUser returns a single reservation with its seats, enforcing
// ownership.  ErrReservationNotFound is returned when the row does not
// exist and ErrForbidden when it belongs to a different user.
func (r *ReservationRepo) GetByIDForUser(ctx context.Context, reservationID, userID uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	var res model.Reservation
	if err := scanReservation(r.db.QueryRowContext(ctx, q, reservationID), &res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if res.UserID != userID {
		return nil, ErrForbidden
	}
	seats, err := r.seatsFor(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	res.SelectedSeats = seats
	return &res, nil
}

func (r *ReservationRepo) seatsFor(ctx context.Context, reservationID uint64) ([]string, error) {
	const q = `SELECT seat_label FROM reservation_seats WHERE reservation_id = ? ORDER BY seat_label`
	rows, err := r.db.QueryContext(ctx, q, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]string, 0, 4)
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}

// ListByUser returns all reservations for the given user, newest first,
// with seat labels populated.  When no reservations exist, an empty slice
// is returned.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE user_id = ?
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Reservation, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var res model.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		res.SelectedSeats = []string{}
		index[res.ID] = len(result)
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}
	// Populate seats for all reservations in one query.
	ids := make([]any, 0, len(result))
	placeholders := make([]string, 0, len(result))
	for _, res := range result {
		ids = append(ids, res.ID)
		placeholders = append(placeholders, "?")
	}
	seatQuery := `SELECT reservation_id, seat_label FROM reservation_seats
	              WHERE reservation_id IN (` + strings.Join(placeholders, ",") + `)
	              ORDER BY reservation_id, seat_label`
	srows, err := r.db.QueryContext(ctx, seatQuery, ids...)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var (
			rid  uint64
			seat string
		)
		if err := srows.Scan(&rid, &seat); err != nil {
			return nil, err
		}
		if i, ok := index[rid]; ok {
			result[i].SelectedSeats = append(result[i].SelectedSeats, seat)
		}
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CancelByIDForUser flips an active reservation to cancelled and stamps
// cancelled_at.  No other column changes and the operation cannot be
// undone through the API.  It returns ErrReservationNotFound when no row
// matches, ErrForbidden for a foreign reservation and ErrConflict when
// the reservation is already cancelled.
func (r *ReservationRepo) CancelByIDForUser(ctx context.Context, reservationID, userID uint64) error {
	const q = `UPDATE reservations
	           SET status = ?, cancelled_at = NOW()
	           WHERE id = ? AND user_id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, model.ReservationCancelled, reservationID, userID, model.ReservationActive)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// Distinguish missing, foreign and already-cancelled rows.
	var (
		ownerID uint64
		status  string
	)
	err = r.db.QueryRowContext(ctx, `SELECT user_id, status FROM reservations WHERE id = ?`, reservationID).
		Scan(&ownerID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrReservationNotFound
	}
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrForbidden
	}
	return ErrConflict
}
