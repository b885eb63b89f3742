// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a reservation is successfully
// created. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID   uint64   `json:"reservation_id"`
	UserID          uint64   `json:"user_id"`
	ShowtimeID      uint64   `json:"showtime_id"`
	MovieTitle      string   `json:"movie_title"`
	Theater         string   `json:"theater"`
	ShowDate        string   `json:"show_date"`
	ShowTime        string   `json:"show_time"`
	TicketType      string   `json:"ticket_type"`
	NumberOfTickets int      `json:"number_of_tickets"`
	SeatLabels      []string `json:"seats"`
	TotalPriceYen   int      `json:"total_price_yen"`
	ConfirmedAt     string   `json:"confirmed_at"`
}
