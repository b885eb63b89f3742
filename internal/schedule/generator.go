package schedule

import (
	"math/rand"
	"time"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

// DefaultSlots is the candidate start-time grid: every 30 minutes from
// 10:00 through 21:30 (24 slots).
var DefaultSlots = []string{
	"10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30", "19:00", "19:30",
	"20:00", "20:30", "21:00", "21:30",
}

// GeneratorConfig tunes the randomized schedule generation.  The zero
// value is not usable; construct via DefaultConfig and override as needed.
type GeneratorConfig struct {
	Days          int      // length of the scheduling window in days
	Slots         []string // candidate "HH:MM" start times
	InclusionProb float64  // probability a movie screens in a given theater/day
	MinScreenings int      // minimum target screenings per inclusion
	MaxScreenings int      // maximum target screenings per inclusion
	MinOccupancy  float64  // lower bound of the available-seats ratio
	MaxOccupancy  float64  // upper bound of the available-seats ratio
}

// DefaultConfig returns the production seeding parameters: a 7-day window
// over the default slot grid, 40% inclusion, 1–2 screenings per inclusion
// and 50–90% of capacity marked available.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Days:          7,
		Slots:         DefaultSlots,
		InclusionProb: 0.4,
		MinScreenings: 1,
		MaxScreenings: 2,
		MinOccupancy:  0.5,
		MaxOccupancy:  0.9,
	}
}

// Generator assigns movies to theaters and time slots without
// double-booking a screen.  All randomness flows through the injected
// rand.Rand so tests can seed it for deterministic output.
type Generator struct {
	rng *rand.Rand
	cfg GeneratorConfig
}

// NewGenerator builds a Generator from a random source and config.
func NewGenerator(rng *rand.Rand, cfg GeneratorConfig) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// bookingKey identifies the per-(date, theater) interval bucket.
type bookingKey struct {
	date    string
	theater string
}

// Generate produces a flat list of showtimes for the configured window
// starting at startDate.  For every (movie, date, theater) triple it
// decides stochastically whether the movie screens there, how many
// screenings to attempt, then walks a shuffled copy of the slot grid and
// commits the first candidates that do not overlap anything already booked
// for that exact (theater, date).  The booked-interval index is local to
// this call.  When no free slot remains the movie simply receives fewer
// screenings than targeted; that shortfall is silent and acceptable.
func (g *Generator) Generate(movies []model.Movie, theaters []model.Theater, startDate time.Time) []model.Showtime {
	booked := make(map[bookingKey][]Interval)
	var out []model.Showtime

	for _, movie := range movies {
		for day := 0; day < g.cfg.Days; day++ {
			date := startDate.AddDate(0, 0, day).Format("2006-01-02")
			for _, theater := range theaters {
				if g.rng.Float64() >= g.cfg.InclusionProb {
					continue
				}
				target := g.cfg.MinScreenings
				if span := g.cfg.MaxScreenings - g.cfg.MinScreenings; span > 0 {
					target += g.rng.Intn(span + 1)
				}

				// Shuffle a copy of the slot grid to avoid positional bias
				// toward early start times.
				slots := make([]string, len(g.cfg.Slots))
				copy(slots, g.cfg.Slots)
				g.rng.Shuffle(len(slots), func(i, j int) {
					slots[i], slots[j] = slots[j], slots[i]
				})

				key := bookingKey{date: date, theater: theater.Name}
				added := 0
				for _, slot := range slots {
					if added >= target {
						break
					}
					start, err := ParseClock(slot)
					if err != nil {
						continue
					}
					candidate := ScreeningInterval(start, movie.Duration)
					if overlapsAny(candidate, booked[key]) {
						continue
					}
					out = append(out, model.Showtime{
						MovieTitle:     movie.Title,
						Date:           date,
						Time:           slot,
						Theater:        theater.Name,
						AvailableSeats: g.availableSeats(theater),
						Duration:       movie.Duration,
					})
					booked[key] = append(booked[key], candidate)
					added++
				}
			}
		}
	}
	return out
}

// overlapsAny tests a candidate against every interval already committed
// for the same (theater, date).
func overlapsAny(candidate Interval, committed []Interval) bool {
	for _, iv := range committed {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// availableSeats picks a seed-time placeholder between MinOccupancy and
// MaxOccupancy of the theater capacity.  It is not derived from real
// bookings; runtime availability comes from the reservation records.
func (g *Generator) availableSeats(t model.Theater) int {
	ratio := g.cfg.MinOccupancy + g.rng.Float64()*(g.cfg.MaxOccupancy-g.cfg.MinOccupancy)
	return int(float64(t.Capacity()) * ratio)
}
