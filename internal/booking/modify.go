package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

var (
	// ErrCancelled is returned when editing or cancelling an already
	// cancelled reservation.
	ErrCancelled = errors.New("reservation is cancelled")
	// ErrPastShowtime is returned when the screening has already started.
	ErrPastShowtime = errors.New("showtime has already passed")
)

// phonePattern accepts 10 or 11 digits after separators are stripped,
// matching Japanese fixed-line and mobile numbers.
var phonePattern = regexp.MustCompile(`^\d{10,11}$`)

// NormalizePhone strips spaces and hyphens and validates the digit count.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.NewReplacer("-", "", " ", "", "　", "").Replace(strings.TrimSpace(raw))
	if !phonePattern.MatchString(cleaned) {
		return "", fmt.Errorf("invalid phone number %q", raw)
	}
	return cleaned, nil
}

// ShowtimeMoment combines a reservation's date and start time into a
// concrete instant in the given location.
func ShowtimeMoment(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}

// DeriveStatus computes the display status of a reservation at read time:
// a cancelled row stays cancelled, an active row whose screening already
// started becomes "past", anything else is active.  Nothing is written
// back to the store.
func DeriveStatus(r model.Reservation, now time.Time, loc *time.Location) string {
	if r.Status == model.ReservationCancelled {
		return model.ReservationCancelled
	}
	moment, err := ShowtimeMoment(r.Date, r.Showtime, loc)
	if err == nil && moment.Before(now) {
		return model.ReservationPast
	}
	return model.ReservationActive
}

// Modification carries the editable fields of a reservation.
type Modification struct {
	TicketType      string
	NumberOfTickets int
	SelectedSeats   []string
}

// ApplyModification validates an edit against the original reservation
// and returns the updated ticket fields.  Rules:
//   - cancelled and past reservations cannot be modified;
//   - when the ticket count changes, a stale seat selection (the original
//     seats, or a wrong-sized selection) is discarded and must be re-picked;
//   - the seat count must equal the new ticket count;
//   - unit and total price are recomputed from the ticket category, never
//     trusted from the client.
func ApplyModification(orig model.Reservation, mod Modification, now time.Time, loc *time.Location) (model.Reservation, error) {
	if orig.Status == model.ReservationCancelled {
		return model.Reservation{}, ErrCancelled
	}
	if moment, err := ShowtimeMoment(orig.Date, orig.Showtime, loc); err == nil && moment.Before(now) {
		return model.Reservation{}, ErrPastShowtime
	}
	if mod.NumberOfTickets < 1 {
		return model.Reservation{}, fmt.Errorf("number of tickets must be positive")
	}

	seats := mod.SelectedSeats
	if mod.NumberOfTickets != orig.NumberOfTickets && sameSeats(seats, orig.SelectedSeats) {
		// Count changed but the client resubmitted the old selection:
		// reset it so the user picks seats matching the new count.
		seats = nil
	}
	if len(seats) != mod.NumberOfTickets {
		return model.Reservation{}, fmt.Errorf("select %d seat(s), got %d", mod.NumberOfTickets, len(seats))
	}

	unit, total, err := TotalPrice(mod.TicketType, mod.NumberOfTickets)
	if err != nil {
		return model.Reservation{}, err
	}

	updated := orig
	updated.TicketType = mod.TicketType
	updated.NumberOfTickets = mod.NumberOfTickets
	updated.SelectedSeats = seats
	updated.UnitPrice = unit
	updated.TotalPrice = total
	return updated, nil
}

func sameSeats(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}
