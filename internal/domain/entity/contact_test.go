package entity

import (
	"testing"
	"time"
)

func contactBorn(birth time.Time) *Contact {
	return &Contact{Name: "test", BirthDate: birth}
}

// anniversary moves the month/day of birth relative to today by delta
// days, keeping the birth year in the past.
func birthWithAnniversaryIn(today time.Time, delta int) time.Time {
	ann := today.AddDate(0, 0, delta)
	return time.Date(1990, ann.Month(), ann.Day(), 0, 0, 0, 0, time.UTC)
}

func TestHasBirthdayWithinWindow(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		delta int
		days  int
		want  bool
	}{
		{"seven days ahead included", 7, 7, true},
		{"tomorrow included", 1, 7, true},
		{"today excluded", 0, 7, false},
		{"eight days ahead excluded", 8, 7, false},
		{"yesterday excluded", -1, 7, false},
		{"zero window excludes everything", 3, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := contactBorn(birthWithAnniversaryIn(today, tc.delta))
			if got := c.HasBirthdayWithin(tc.days, today); got != tc.want {
				t.Fatalf("HasBirthdayWithin(%d) = %v, want %v (birth %s)",
					tc.days, got, tc.want, c.BirthDate.Format("2006-01-02"))
			}
		})
	}
}

func TestHasBirthdayWithinYearWraparound(t *testing.T) {
	t.Parallel()

	// Dec 28 today, birthday anniversary Jan 2: five days ahead across
	// the year boundary.
	today := time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)
	c := contactBorn(time.Date(1992, 1, 2, 0, 0, 0, 0, time.UTC))

	if !c.HasBirthdayWithin(7, today) {
		t.Fatal("birthday just after new year not picked up")
	}
	if c.HasBirthdayWithin(3, today) {
		t.Fatal("birthday outside a 3-day window picked up")
	}
}

func TestHasBirthdayPassedThisYearExcluded(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	c := contactBorn(time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC))

	if c.HasBirthdayWithin(7, today) {
		t.Fatal("birthday already passed this year should be excluded")
	}
}
