package booking

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

func baseReservation() model.Reservation {
	return model.Reservation{
		ID:              10,
		MovieTitle:      "怪物",
		ShowtimeID:      5,
		Showtime:        "18:00",
		Date:            "2026-09-10",
		Name:            "山田 太郎",
		Phone:           "09012345678",
		TicketType:      model.TicketRegular,
		NumberOfTickets: 2,
		SelectedSeats:   []string{"C3", "C4"},
		UnitPrice:       1800,
		TotalPrice:      3600,
		Status:          model.ReservationActive,
		UserID:          7,
	}
}

func TestNormalizePhone(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"090-1234-5678", "09012345678"},
		{"03 1234 5678", "0312345678"},
		{"0312345678", "0312345678"},
	} {
		got, err := NormalizePhone(tc.in)
		if err != nil {
			t.Fatalf("NormalizePhone(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "12345", "abcdefghij", "090123456789"} {
		if _, err := NormalizePhone(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDeriveStatus(t *testing.T) {
	loc := time.UTC
	res := baseReservation()

	t.Run("upcoming stays active", func(t *testing.T) {
		now := time.Date(2026, 9, 10, 17, 0, 0, 0, loc)
		if got := DeriveStatus(res, now, loc); got != model.ReservationActive {
			t.Fatalf("got %s, want active", got)
		}
	})
	t.Run("started screening becomes past", func(t *testing.T) {
		now := time.Date(2026, 9, 10, 18, 1, 0, 0, loc)
		if got := DeriveStatus(res, now, loc); got != model.ReservationPast {
			t.Fatalf("got %s, want past", got)
		}
	})
	t.Run("cancelled stays cancelled even when past", func(t *testing.T) {
		cancelled := res
		cancelled.Status = model.ReservationCancelled
		now := time.Date(2026, 9, 11, 0, 0, 0, 0, loc)
		if got := DeriveStatus(cancelled, now, loc); got != model.ReservationCancelled {
			t.Fatalf("got %s, want cancelled", got)
		}
	})
}

func TestApplyModification(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, loc)

	t.Run("recomputes price on type change", func(t *testing.T) {
		got, err := ApplyModification(baseReservation(), Modification{
			TicketType:      model.TicketSenior,
			NumberOfTickets: 2,
			SelectedSeats:   []string{"C3", "C4"},
		}, now, loc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UnitPrice != 1100 || got.TotalPrice != 2200 {
			t.Fatalf("prices = (%d, %d), want (1100, 2200)", got.UnitPrice, got.TotalPrice)
		}
		if !reflect.DeepEqual(got.SelectedSeats, []string{"C3", "C4"}) {
			t.Fatalf("seats changed unexpectedly: %v", got.SelectedSeats)
		}
	})

	t.Run("count change with stale seats is rejected until re-picked", func(t *testing.T) {
		_, err := ApplyModification(baseReservation(), Modification{
			TicketType:      model.TicketRegular,
			NumberOfTickets: 3,
			SelectedSeats:   []string{"C3", "C4"}, // the old selection
		}, now, loc)
		if err == nil {
			t.Fatalf("expected error when count changed but seats were not re-picked")
		}
	})

	t.Run("count change with fresh seats succeeds", func(t *testing.T) {
		got, err := ApplyModification(baseReservation(), Modification{
			TicketType:      model.TicketChild,
			NumberOfTickets: 3,
			SelectedSeats:   []string{"D1", "D2", "D3"},
		}, now, loc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalPrice != 900*3 {
			t.Fatalf("total = %d, want %d", got.TotalPrice, 900*3)
		}
		if got.NumberOfTickets != 3 || len(got.SelectedSeats) != 3 {
			t.Fatalf("count/seats mismatch: %d tickets, %v", got.NumberOfTickets, got.SelectedSeats)
		}
	})

	t.Run("seat count must match ticket count", func(t *testing.T) {
		_, err := ApplyModification(baseReservation(), Modification{
			TicketType:      model.TicketRegular,
			NumberOfTickets: 2,
			SelectedSeats:   []string{"C3"},
		}, now, loc)
		if err == nil {
			t.Fatalf("expected error for short seat selection")
		}
	})

	t.Run("cancelled reservation cannot be modified", func(t *testing.T) {
		cancelled := baseReservation()
		cancelled.Status = model.ReservationCancelled
		_, err := ApplyModification(cancelled, Modification{
			TicketType:      model.TicketRegular,
			NumberOfTickets: 2,
			SelectedSeats:   []string{"C3", "C4"},
		}, now, loc)
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})

	t.Run("past reservation cannot be modified", func(t *testing.T) {
		late := time.Date(2026, 9, 10, 19, 0, 0, 0, loc)
		_, err := ApplyModification(baseReservation(), Modification{
			TicketType:      model.TicketRegular,
			NumberOfTickets: 2,
			SelectedSeats:   []string{"C3", "C4"},
		}, late, loc)
		if !errors.Is(err, ErrPastShowtime) {
			t.Fatalf("expected ErrPastShowtime, got %v", err)
		}
	})

	t.Run("unknown ticket type is rejected", func(t *testing.T) {
		_, err := ApplyModification(baseReservation(), Modification{
			TicketType:      "vip",
			NumberOfTickets: 2,
			SelectedSeats:   []string{"C3", "C4"},
		}, now, loc)
		if !errors.Is(err, ErrUnknownTicketType) {
			t.Fatalf("expected ErrUnknownTicketType, got %v", err)
		}
	})
}
