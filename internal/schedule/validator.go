package schedule

import (
	"fmt"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

// Conflict describes two showtimes of the same (date, theater) whose
// occupied intervals intersect.
type Conflict struct {
	Date    string
	Theater string
	MovieA  string
	TimeA   string
	MovieB  string
	TimeB   string
}

func (c *Conflict) String() string {
	return fmt.Sprintf("%s %s: %s (%s) overlaps %s (%s)",
		c.Date, c.Theater, c.MovieB, c.TimeB, c.MovieA, c.TimeA)
}

// Validate re-checks a generated showtime list for double-booked screens.
// It groups entries by (date, theater) and, walking in insertion order,
// tests every entry against those already accepted for the same group
// using the same interval arithmetic as the generator (end = start +
// duration + turnaround).  The first conflict found is returned; nil means
// the whole batch is conflict-free.  Validate is a pure audit and never
// mutates its input.
func Validate(showtimes []model.Showtime) *Conflict {
	type entry struct {
		movie string
		time  string
		iv    Interval
	}
	groups := make(map[bookingKey][]entry)

	for _, st := range showtimes {
		start, err := ParseClock(st.Time)
		if err != nil {
			// Malformed start times cannot be scheduled against anything;
			// treat as a conflict with themselves so bad data surfaces.
			return &Conflict{
				Date: st.Date, Theater: st.Theater,
				MovieA: st.MovieTitle, TimeA: st.Time,
				MovieB: st.MovieTitle, TimeB: st.Time,
			}
		}
		cur := entry{movie: st.MovieTitle, time: st.Time, iv: ScreeningInterval(start, st.Duration)}
		key := bookingKey{date: st.Date, theater: st.Theater}
		for _, existing := range groups[key] {
			if cur.iv.Overlaps(existing.iv) {
				return &Conflict{
					Date:    st.Date,
					Theater: st.Theater,
					MovieA:  existing.movie,
					TimeA:   existing.time,
					MovieB:  cur.movie,
					TimeB:   cur.time,
				}
			}
		}
		groups[key] = append(groups[key], cur)
	}
	return nil
}
