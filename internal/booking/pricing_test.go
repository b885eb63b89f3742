package booking

import (
	"errors"
	"testing"
)

func TestUnitPrice(t *testing.T) {
	cases := []struct {
		ticketType string
		want       int
	}{
		{"regular", 1800},
		{"senior", 1100},
		{"child", 900},
	}
	for _, tc := range cases {
		got, err := UnitPrice(tc.ticketType)
		if err != nil {
			t.Fatalf("UnitPrice(%s): %v", tc.ticketType, err)
		}
		if got != tc.want {
			t.Fatalf("UnitPrice(%s) = %d, want %d", tc.ticketType, got, tc.want)
		}
	}
	if _, err := UnitPrice("vip"); !errors.Is(err, ErrUnknownTicketType) {
		t.Fatalf("expected ErrUnknownTicketType, got %v", err)
	}
}

func TestTotalPrice(t *testing.T) {
	unit, total, err := TotalPrice("senior", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit != 1100 || total != 3300 {
		t.Fatalf("TotalPrice(senior, 3) = (%d, %d), want (1100, 3300)", unit, total)
	}
}
