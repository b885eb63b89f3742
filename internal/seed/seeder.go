package seed

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/ktanaka99/movie-reservation/internal/repository"
	"github.com/ktanaka99/movie-reservation/internal/schedule"
)

// Seeder replaces the catalog and schedule with freshly generated sample
// data. Reservations are left alone; they carry their own copies of the
// movie title and screening time.
type Seeder struct {
	Movies    *repository.MovieRepo
	Theaters  *repository.TheaterRepo
	Showtimes *repository.ShowtimeRepo
}

func NewSeeder(m *repository.MovieRepo, t *repository.TheaterRepo, s *repository.ShowtimeRepo) *Seeder {
	return &Seeder{Movies: m, Theaters: t, Showtimes: s}
}

// Summary reports what a seeding run produced.
type Summary struct {
	Movies    int    `json:"movies"`
	Theaters  int    `json:"theaters"`
	Showtimes int    `json:"showtimes"`
	Conflict  string `json:"conflict,omitempty"`
}

// Run clears the schedule and catalog, inserts the sample movies, makes
// sure the theaters exist and generates a week of showtimes starting
// today. A zero randSeed derives one from the clock. The generated
// schedule is re-checked with the validator; a conflict is logged but
// does not abort the run, since the booking flow tolerates an odd
// schedule better than an empty one.
func (s *Seeder) Run(ctx context.Context, randSeed int64) (Summary, error) {
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	if err := s.Showtimes.DeleteAll(ctx); err != nil {
		return Summary{}, err
	}
	if err := s.Movies.DeleteAll(ctx); err != nil {
		return Summary{}, err
	}

	movies := Movies()
	if err := s.Movies.CreateBulk(ctx, movies); err != nil {
		return Summary{}, err
	}
	if err := s.Theaters.EnsureAll(ctx, Theaters()); err != nil {
		return Summary{}, err
	}
	theaters, err := s.Theaters.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	gen := schedule.NewGenerator(rand.New(rand.NewSource(randSeed)), schedule.DefaultConfig())
	showtimes := gen.Generate(movies, theaters, time.Now())

	summary := Summary{Movies: len(movies), Theaters: len(theaters), Showtimes: len(showtimes)}
	if conflict := schedule.Validate(showtimes); conflict != nil {
		summary.Conflict = conflict.String()
		log.Printf("seed: generated schedule has a conflict: %s", conflict)
	}

	if err := s.Showtimes.CreateBulk(ctx, showtimes); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
