package booking

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RowLetters are the seating rows of every theater grid, front to back.
// Seat labels combine a row letter with a 1-based column number ("C7").
const RowLetters = "ABCDEFGH"

// ParseSeatLabel splits a label like "C7" into its row letter and column
// number, rejecting anything outside the A–H rows or a positive column.
func ParseSeatLabel(label string) (row byte, col int, err error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("invalid seat label %q", label)
	}
	row = s[0]
	if !strings.ContainsRune(RowLetters, rune(row)) {
		return 0, 0, fmt.Errorf("invalid seat row in %q", label)
	}
	col, convErr := strconv.Atoi(s[1:])
	if convErr != nil || col < 1 {
		return 0, 0, fmt.Errorf("invalid seat column in %q", label)
	}
	return row, col, nil
}

// ValidateSeatLabels checks every label against the given grid geometry
// and rejects duplicates within the selection.
func ValidateSeatLabels(labels []string, rows, cols int) error {
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		row, col, err := ParseSeatLabel(label)
		if err != nil {
			return err
		}
		if int(row-'A') >= rows {
			return fmt.Errorf("seat %q is beyond the last row", label)
		}
		if col > cols {
			return fmt.Errorf("seat %q is beyond the last column", label)
		}
		normalized := fmt.Sprintf("%c%d", row, col)
		if _, dup := seen[normalized]; dup {
			return fmt.Errorf("seat %q selected twice", label)
		}
		seen[normalized] = struct{}{}
	}
	return nil
}

// SeatClaim pairs a reservation with the seats it holds, as loaded from
// the reservation store for one showtime.
type SeatClaim struct {
	ReservationID uint64
	Status        string
	Seats         []string
}

// ClaimedSeats flattens the seats of every active claim into a single
// de-duplicated, sorted set of labels.  Cancelled reservations do not
// count toward occupancy.  When excludeReservation is non-zero, that
// reservation's own seats are left out so a user editing their booking
// does not see their current seats as blocked.
func ClaimedSeats(claims []SeatClaim, excludeReservation uint64) []string {
	set := make(map[string]struct{})
	for _, claim := range claims {
		if claim.Status != "active" {
			continue
		}
		if excludeReservation != 0 && claim.ReservationID == excludeReservation {
			continue
		}
		for _, seat := range claim.Seats {
			set[seat] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for seat := range set {
		out = append(out, seat)
	}
	sort.Strings(out)
	return out
}

// Conflicting returns the subset of requested seats already present in
// the claimed set, preserving request order.
func Conflicting(requested, claimed []string) []string {
	taken := make(map[string]struct{}, len(claimed))
	for _, seat := range claimed {
		taken[seat] = struct{}{}
	}
	var out []string
	for _, seat := range requested {
		if _, ok := taken[seat]; ok {
			out = append(out, seat)
		}
	}
	return out
}
