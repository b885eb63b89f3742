package seed

import (
	"testing"

	"github.com/ktanaka99/movie-reservation/internal/booking"
)

func TestMoviesCatalog(t *testing.T) {
	movies := Movies()
	if len(movies) != 8 {
		t.Fatalf("expected 8 catalog movies, got %d", len(movies))
	}

	seen := map[string]bool{}
	for _, m := range movies {
		if m.Title == "" {
			t.Error("movie with empty title")
		}
		if seen[m.Title] {
			t.Errorf("duplicate title %q", m.Title)
		}
		seen[m.Title] = true

		if m.Duration <= 0 {
			t.Errorf("%s: non-positive duration %d", m.Title, m.Duration)
		}
		if m.ReleaseYear < 2020 {
			t.Errorf("%s: implausible release year %d", m.Title, m.ReleaseYear)
		}
		if m.Description == "" || m.Genre == "" || m.Director == "" {
			t.Errorf("%s: incomplete catalog entry", m.Title)
		}
	}
}

func TestTheatersCatalog(t *testing.T) {
	theaters := Theaters()
	if len(theaters) != 3 {
		t.Fatalf("expected 3 theaters, got %d", len(theaters))
	}

	capacities := map[string]int{
		"シアター1": 120,
		"シアター2": 80,
		"シアター3": 152,
	}
	for _, th := range theaters {
		// Seat labels only cover rows A through H.
		if th.Rows <= 0 || th.Rows > len(booking.RowLetters) {
			t.Errorf("%s: rows %d outside the labelable range", th.Name, th.Rows)
		}
		if th.Cols <= 0 {
			t.Errorf("%s: non-positive cols %d", th.Name, th.Cols)
		}
		want, ok := capacities[th.Name]
		if !ok {
			t.Errorf("unexpected theater %q", th.Name)
			continue
		}
		if got := th.Capacity(); got != want {
			t.Errorf("%s: capacity = %d, want %d", th.Name, got, want)
		}
	}
}
