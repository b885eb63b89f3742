package schedule

import "testing"

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{600, 700}, Interval{720, 800}, false},
		{"partial overlap", Interval{600, 700}, Interval{650, 750}, true},
		{"a contains b", Interval{600, 800}, Interval{650, 700}, true},
		{"b contains a", Interval{650, 700}, Interval{600, 800}, true},
		{"identical", Interval{600, 700}, Interval{600, 700}, true},
		{"adjacent, a before b", Interval{600, 700}, Interval{700, 800}, false},
		{"adjacent, b before a", Interval{700, 800}, Interval{600, 700}, false},
		{"shared start", Interval{600, 650}, Interval{600, 700}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Overlap must be symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v (asymmetric)", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestEndMinute(t *testing.T) {
	// 14:00 screening of a 134-minute movie frees the screen at 16:44.
	if got := EndMinute(14*60, 134); got != 14*60+134+30 {
		t.Fatalf("EndMinute = %d, want %d", got, 14*60+134+30)
	}
	// Late screenings roll past 24:00 without wraparound.
	if got := EndMinute(21*60+30, 150); got <= 24*60 {
		t.Fatalf("expected end past midnight, got %d", got)
	}
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 14*60+30 {
		t.Fatalf("ParseClock(14:30) = %d, want %d", min, 14*60+30)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("expected error for hour out of range")
	}
	if _, err := ParseClock("bogus"); err == nil {
		t.Fatalf("expected error for malformed input")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9*60 + 5); got != "09:05" {
		t.Fatalf("FormatClock = %q, want 09:05", got)
	}
	// Rolled end times keep counting upwards.
	if got := FormatClock(25 * 60); got != "25:00" {
		t.Fatalf("FormatClock = %q, want 25:00", got)
	}
}
