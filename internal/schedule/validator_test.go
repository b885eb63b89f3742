package schedule

import (
	"testing"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

func TestValidate(t *testing.T) {
	t.Run("clean schedule passes", func(t *testing.T) {
		showtimes := []model.Showtime{
			{MovieTitle: "怪物", Date: "2026-09-01", Time: "10:00", Theater: "シアター1", Duration: 126},
			// 10:00 + 126 + 30 = 12:36; 12:40 is clear.
			{MovieTitle: "ゴジラ-1.0", Date: "2026-09-01", Time: "12:40", Theater: "シアター1", Duration: 124},
			// Same times in a different theater never conflict.
			{MovieTitle: "怪物", Date: "2026-09-01", Time: "10:00", Theater: "シアター2", Duration: 126},
			// Same theater on a different date never conflicts.
			{MovieTitle: "怪物", Date: "2026-09-02", Time: "10:00", Theater: "シアター1", Duration: 126},
		}
		if c := Validate(showtimes); c != nil {
			t.Fatalf("expected no conflict, got %s", c)
		}
	})

	t.Run("contained screening is rejected", func(t *testing.T) {
		showtimes := []model.Showtime{
			// Occupies 14:00–16:44.
			{MovieTitle: "キングダム 大将軍の帰還", Date: "2026-09-01", Time: "14:00", Theater: "シアター1", Duration: 134},
			// 15:00–16:20 falls fully inside the window above.
			{MovieTitle: "名探偵コナン 100万ドルの五稜星", Date: "2026-09-01", Time: "15:00", Theater: "シアター1", Duration: 50},
		}
		c := Validate(showtimes)
		if c == nil {
			t.Fatalf("expected conflict for contained screening")
		}
		if c.MovieA != "キングダム 大将軍の帰還" || c.MovieB != "名探偵コナン 100万ドルの五稜星" {
			t.Fatalf("conflict names wrong pair: %s vs %s", c.MovieA, c.MovieB)
		}
		if c.TimeA != "14:00" || c.TimeB != "15:00" {
			t.Fatalf("conflict names wrong times: %s vs %s", c.TimeA, c.TimeB)
		}
	})

	t.Run("back-to-back at exact end is accepted", func(t *testing.T) {
		// 120-minute movie at 10:00 frees the screen at 12:30 exactly.
		showtimes := []model.Showtime{
			{MovieTitle: "老後の居場所", Date: "2026-09-01", Time: "10:00", Theater: "シアター1", Duration: 120},
			{MovieTitle: "四月になれば彼女は", Date: "2026-09-01", Time: "12:30", Theater: "シアター1", Duration: 116},
		}
		if c := Validate(showtimes); c != nil {
			t.Fatalf("back-to-back screening should be valid, got %s", c)
		}
	})

	t.Run("one minute earlier conflicts", func(t *testing.T) {
		showtimes := []model.Showtime{
			{MovieTitle: "老後の居場所", Date: "2026-09-01", Time: "10:00", Theater: "シアター1", Duration: 120},
			{MovieTitle: "四月になれば彼女は", Date: "2026-09-01", Time: "12:29", Theater: "シアター1", Duration: 116},
		}
		if Validate(showtimes) == nil {
			t.Fatalf("expected conflict one minute before turnaround completes")
		}
	})

	t.Run("malformed start time is reported", func(t *testing.T) {
		showtimes := []model.Showtime{
			{MovieTitle: "怪物", Date: "2026-09-01", Time: "nonsense", Theater: "シアター1", Duration: 126},
		}
		if Validate(showtimes) == nil {
			t.Fatalf("expected malformed time to surface as a conflict")
		}
	})
}
