package cli

import (
	"testing"
	"time"
)

func TestNextMonday(t *testing.T) {
	cases := []struct {
		from time.Time
		want time.Time
	}{
		// From a Thursday
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)},
		// From a Sunday
		{time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC), time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)},
		// From a Monday: strictly the next one
		{time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := nextMonday(c.from)
		if !got.Equal(c.want) {
			t.Errorf("nextMonday(%s) = %s, want %s",
				c.from.Format("2006-01-02"), got.Format("2006-01-02"), c.want.Format("2006-01-02"))
		}
		if got.Weekday() != time.Monday {
			t.Errorf("nextMonday(%s) landed on %s", c.from.Format("2006-01-02"), got.Weekday())
		}
	}
}
