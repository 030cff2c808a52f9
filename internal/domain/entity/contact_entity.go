package entity

import (
	"time"
)

// Contact belongs to exactly one user; every read and write is
// filtered by UserID so owners cannot touch each other's rows.
type Contact struct {
	ID          int64
	UserID      int64
	Name        string
	LastName    string
	Email       string
	PhoneNumber string
	BirthDate   time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasBirthdayWithin reports whether the contact's birthday anniversary
// falls within the next days after today (exclusive of today itself).
// It mirrors the SQL filter used by the postgres store: the age in full
// years computed against the birth date shifted back by N days exceeds
// the age computed against the birth date as-is exactly when the
// anniversary lies in (today, today+N]. The comparison works across
// year boundaries because age increments at the anniversary regardless
// of calendar year.
func (c *Contact) HasBirthdayWithin(days int, today time.Time) bool {
	if days <= 0 {
		return false
	}
	shifted := c.BirthDate.AddDate(0, 0, -days)
	return ageYears(shifted, today) > ageYears(c.BirthDate, today)
}

// ageYears returns the number of full years between birth and today,
// matching postgres date_part('year', age(...)) semantics.
func ageYears(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(today) {
		years--
	}
	return years
}
