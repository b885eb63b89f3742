package booking

import (
	"reflect"
	"testing"
)

func TestParseSeatLabel(t *testing.T) {
	row, col, err := ParseSeatLabel("C7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row != 'C' || col != 7 {
		t.Fatalf("ParseSeatLabel(C7) = (%c, %d)", row, col)
	}

	for _, bad := range []string{"", "7", "I1", "C0", "Cx", "Z12"} {
		if _, _, err := ParseSeatLabel(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestValidateSeatLabels(t *testing.T) {
	t.Run("valid selection", func(t *testing.T) {
		if err := ValidateSeatLabels([]string{"A1", "A2", "H10"}, 8, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("beyond grid", func(t *testing.T) {
		if err := ValidateSeatLabels([]string{"A11"}, 8, 10); err == nil {
			t.Fatalf("expected error for column past grid")
		}
		if err := ValidateSeatLabels([]string{"G1"}, 6, 8); err == nil {
			t.Fatalf("expected error for row past grid")
		}
	})
	t.Run("duplicate seat", func(t *testing.T) {
		if err := ValidateSeatLabels([]string{"B2", "B2"}, 8, 10); err == nil {
			t.Fatalf("expected error for duplicate seat")
		}
	})
}

func TestClaimedSeats(t *testing.T) {
	claims := []SeatClaim{
		{ReservationID: 1, Status: "active", Seats: []string{"A1", "A2"}},
		{ReservationID: 2, Status: "active", Seats: []string{"B5"}},
		{ReservationID: 3, Status: "cancelled", Seats: []string{"C1", "C2"}},
	}

	t.Run("active seats only", func(t *testing.T) {
		got := ClaimedSeats(claims, 0)
		want := []string{"A1", "A2", "B5"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("ClaimedSeats = %v, want %v", got, want)
		}
	})

	t.Run("excludes the reservation being edited", func(t *testing.T) {
		got := ClaimedSeats(claims, 1)
		want := []string{"B5"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("ClaimedSeats = %v, want %v", got, want)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		dup := append(claims, SeatClaim{ReservationID: 4, Status: "active", Seats: []string{"B5"}})
		got := ClaimedSeats(dup, 0)
		want := []string{"A1", "A2", "B5"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("ClaimedSeats = %v, want %v", got, want)
		}
	})
}

func TestConflicting(t *testing.T) {
	got := Conflicting([]string{"A1", "B2", "C3"}, []string{"B2", "D4"})
	if !reflect.DeepEqual(got, []string{"B2"}) {
		t.Fatalf("Conflicting = %v, want [B2]", got)
	}
	if got := Conflicting([]string{"A1"}, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
