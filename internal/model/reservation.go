package model

import "time"

// Reservation statuses stored in the database.  A third, derived status
// "past" is computed at read time when the showtime is already over; it is
// never written to the reservations table.
const (
	ReservationActive    = "active"
	ReservationCancelled = "cancelled"
	ReservationPast      = "past" // derived only
)

// Ticket categories.  Each category carries a fixed unit price; pricing
// lives in the booking package.
const (
	TicketRegular = "regular"
	TicketSenior  = "senior"
	TicketChild   = "child"
)

// Reservation records a booking of one or more seats for a showtime.
// Selected seats are stored in the reservation_seats table and surfaced
// here as a slice of seat labels ("C7" style).  Payment happens in person,
// so the stored prices are informational.  Cancellation is a soft delete:
// the status flips to cancelled and CancelledAt is set; no other field
// changes and the row is never removed.
//
// Fields:
//  ID              – primary key identifier.
//  MovieID         – movie being watched.
//  MovieTitle      – denormalized title for display without a join.
//  ShowtimeID      – showtime being booked.
//  Showtime        – denormalized start time "HH:MM".
//  Date            – denormalized date "YYYY-MM-DD".
//  Name            – purchaser name.
//  Phone           – purchaser phone number (10–11 digits).
//  TicketType      – one of regular/senior/child.
//  NumberOfTickets – ticket count; always equals len(SelectedSeats).
//  SelectedSeats   – seat labels claimed by this reservation.
//  UnitPrice       – price per ticket in yen for the chosen category.
//  TotalPrice      – UnitPrice × NumberOfTickets.
//  Status          – active or cancelled ("past" derived at read time).
//  UserID          – owning account.
//  CreatedAt       – creation timestamp.
//  CancelledAt     – set when cancelled (nil otherwise).
type Reservation struct {
	ID              uint64     `json:"id"`
	MovieID         uint64     `json:"movie_id"`
	MovieTitle      string     `json:"movie_title"`
	ShowtimeID      uint64     `json:"showtime_id"`
	Showtime        string     `json:"showtime"`
	Date            string     `json:"date"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	TicketType      string     `json:"ticket_type"`
	NumberOfTickets int        `json:"number_of_tickets"`
	SelectedSeats   []string   `json:"selected_seats"`
	UnitPrice       int        `json:"unit_price"`
	TotalPrice      int        `json:"total_price"`
	Status          string     `json:"status"`
	UserID          uint64     `json:"user_id"`
	CreatedAt       time.Time  `json:"created_at"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
}
