// Package booking holds the pure reservation rules shared by handlers and
// tests: ticket pricing, seat-label arithmetic, claimed-seat aggregation
// and the modification rules applied when a reservation is edited.
package booking

import (
	"errors"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

// Fixed ticket prices in yen.  Payment happens in person at the box
// office; these amounts are informational on the reservation record.
const (
	PriceRegular = 1800
	PriceSenior  = 1100
	PriceChild   = 900
)

// ErrUnknownTicketType is returned for a ticket category outside
// regular/senior/child.
var ErrUnknownTicketType = errors.New("unknown ticket type")

// UnitPrice returns the fixed per-ticket price for a category.
func UnitPrice(ticketType string) (int, error) {
	switch ticketType {
	case model.TicketRegular:
		return PriceRegular, nil
	case model.TicketSenior:
		return PriceSenior, nil
	case model.TicketChild:
		return PriceChild, nil
	default:
		return 0, ErrUnknownTicketType
	}
}

// TotalPrice computes unit price × ticket count for a category.
func TotalPrice(ticketType string, numberOfTickets int) (unit, total int, err error) {
	unit, err = UnitPrice(ticketType)
	if err != nil {
		return 0, 0, err
	}
	return unit, unit * numberOfTickets, nil
}
