// Package schedule implements the showtime scheduling core: minute-based
// time intervals with overlap testing, the randomized seed-time schedule
// generator, and the post-hoc conflict validator.
package schedule

import "fmt"

// TurnaroundMinutes is the fixed cleanup gap reserved after a screening's
// runtime before the next screening may start in the same theater.
const TurnaroundMinutes = 30

// Interval is a half-open time range [Start, End) in minutes since
// midnight.  End may exceed 1440 when a late screening rolls past 24:00;
// no day-wraparound correction is applied.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether a and b intersect.  Three boundary checks are
// required because a single half-open comparison is not symmetric under
// containment: a starts inside b, a ends inside b, or a fully contains b.
func (a Interval) Overlaps(b Interval) bool {
	if a.Start >= b.Start && a.Start < b.End {
		return true
	}
	if a.End > b.Start && a.End <= b.End {
		return true
	}
	if a.Start <= b.Start && a.End >= b.End {
		return true
	}
	return false
}

// EndMinute computes the minute at which a screening's theater becomes free
// again: start + runtime + the turnaround buffer.
func EndMinute(start, durationMinutes int) int {
	return start + durationMinutes + TurnaroundMinutes
}

// ScreeningInterval builds the occupied interval for a screening starting
// at the given minute with the given runtime.
func ScreeningInterval(start, durationMinutes int) Interval {
	return Interval{Start: start, End: EndMinute(start, durationMinutes)}
}

// ParseClock converts an "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight back into "HH:MM".  Values
// past 24:00 keep counting upwards (e.g. 1500 -> "25:00") so that rolled
// end times remain representable.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
