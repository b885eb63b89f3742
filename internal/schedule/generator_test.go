package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

func testMovies() []model.Movie {
	titles := []struct {
		title    string
		duration int
	}{
		{"キングダム 大将軍の帰還", 134},
		{"君たちはどう生きるか", 124},
		{"怪物", 126},
		{"ゴジラ-1.0", 124},
		{"四月になれば彼女は", 116},
		{"名探偵コナン 100万ドルの五稜星", 110},
		{"老後の居場所", 120},
		{"デッドプール＆ウルヴァリン", 127},
	}
	movies := make([]model.Movie, 0, len(titles))
	for i, m := range titles {
		movies = append(movies, model.Movie{ID: uint64(i + 1), Title: m.title, Duration: m.duration})
	}
	return movies
}

func testTheaters() []model.Theater {
	return []model.Theater{
		{ID: 1, Name: "シアター1", Rows: 8, Cols: 15},
		{ID: 2, Name: "シアター2", Rows: 8, Cols: 10},
		{ID: 3, Name: "シアター3", Rows: 8, Cols: 19},
	}
}

func TestGeneratorProducesConflictFreeSchedule(t *testing.T) {
	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	// Several seeds, to make sure conflict-freedom is structural and not
	// an accident of one random walk.
	for _, seed := range []int64{1, 7, 42, 20260830} {
		rng := rand.New(rand.NewSource(seed))
		gen := NewGenerator(rng, DefaultConfig())
		showtimes := gen.Generate(testMovies(), testTheaters(), start)

		if len(showtimes) == 0 {
			t.Fatalf("seed %d: generator produced no showtimes", seed)
		}
		if c := Validate(showtimes); c != nil {
			t.Fatalf("seed %d: validator found conflict: %s", seed, c)
		}
	}
}

func TestGeneratorIsDeterministicForASeed(t *testing.T) {
	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	first := NewGenerator(rand.New(rand.NewSource(99)), DefaultConfig()).
		Generate(testMovies(), testTheaters(), start)
	second := NewGenerator(rand.New(rand.NewSource(99)), DefaultConfig()).
		Generate(testMovies(), testTheaters(), start)

	if len(first) != len(second) {
		t.Fatalf("same seed produced %d vs %d showtimes", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("showtime %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGeneratorEmptyTheaterAcceptsAnySlot(t *testing.T) {
	// With one movie, one theater, one day and a guaranteed single
	// screening, every candidate slot must be accepted on the first try
	// because nothing is booked yet.
	cfg := DefaultConfig()
	cfg.Days = 1
	cfg.InclusionProb = 1.0
	cfg.MinScreenings = 1
	cfg.MaxScreenings = 1

	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	for _, slot := range DefaultSlots {
		cfg.Slots = []string{slot}
		gen := NewGenerator(rand.New(rand.NewSource(1)), cfg)
		got := gen.Generate(testMovies()[:1], testTheaters()[:1], start)
		if len(got) != 1 {
			t.Fatalf("slot %s: expected 1 showtime, got %d", slot, len(got))
		}
		if got[0].Time != slot {
			t.Fatalf("slot %s: scheduled at %s", slot, got[0].Time)
		}
	}
}

func TestGeneratorUnderProvisionsSilently(t *testing.T) {
	// A single candidate slot cannot host two screenings; the generator
	// must emit one showtime and stop without error.
	cfg := DefaultConfig()
	cfg.Days = 1
	cfg.Slots = []string{"14:00"}
	cfg.InclusionProb = 1.0
	cfg.MinScreenings = 2
	cfg.MaxScreenings = 2

	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	gen := NewGenerator(rand.New(rand.NewSource(3)), cfg)
	got := gen.Generate(testMovies()[:1], testTheaters()[:1], start)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 showtime from a single slot, got %d", len(got))
	}
}

func TestGeneratorAvailableSeatsWithinBounds(t *testing.T) {
	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	gen := NewGenerator(rand.New(rand.NewSource(5)), DefaultConfig())
	theaters := testTheaters()
	capacities := make(map[string]int, len(theaters))
	for _, th := range theaters {
		capacities[th.Name] = th.Capacity()
	}

	for _, st := range gen.Generate(testMovies(), theaters, start) {
		capacity := capacities[st.Theater]
		low := int(float64(capacity) * 0.5)
		high := int(float64(capacity) * 0.9)
		if st.AvailableSeats < low || st.AvailableSeats > high {
			t.Fatalf("%s %s: available seats %d outside [%d, %d] for capacity %d",
				st.Theater, st.Time, st.AvailableSeats, low, high, capacity)
		}
	}
}
