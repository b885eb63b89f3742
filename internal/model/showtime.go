package model

// Showtime is a scheduled screening of a movie in a theater on a calendar
// date.  Showtimes are bulk-created by the schedule generator at seed time
// and are immutable afterwards.  The screening occupies the half-open
// interval [Time, Time + Duration + 30min) of its theater; the scheduler
// guarantees that no two showtimes of the same (theater, date) overlap.
//
// Fields:
//  ID             – primary key identifier.
//  MovieTitle     – title of the movie being screened (references movies.title).
//  Date           – calendar date in "YYYY-MM-DD" form.
//  Time           – start time of day in "HH:MM" form.
//  Theater        – name of the theater (references theaters.name).
//  AvailableSeats – seed-time estimate of open seats; not derived from bookings.
//  Duration       – runtime in minutes, inherited from the movie.
type Showtime struct {
	ID             uint64 `json:"id"`              // showtimes.id
	MovieTitle     string `json:"movie_title"`     // showtimes.movie_title
	Date           string `json:"date"`            // showtimes.show_date
	Time           string `json:"time"`            // showtimes.show_time
	Theater        string `json:"theater"`         // showtimes.theater
	AvailableSeats int    `json:"available_seats"` // showtimes.available_seats
	Duration       int    `json:"duration"`        // showtimes.duration (minutes)
}
