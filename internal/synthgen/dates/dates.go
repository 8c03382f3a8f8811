// Package dates has the calendar helpers shared by the generators.
// All values are UTC midnights.
package dates

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Between returns a random day in [start, end]. start must not be after end.
func Between(f *gofakeit.Faker, start, end time.Time) time.Time {
	start, end = Day(start), Day(end)
	span := int(end.Sub(start).Hours() / 24)
	if span <= 0 {
		return start
	}
	return start.AddDate(0, 0, f.Number(0, span))
}

// YearsBefore returns the same calendar day n years before t. Feb 29 maps
// to Feb 28 in non-leap years instead of rolling into March.
func YearsBefore(t time.Time, n int) time.Time {
	t = Day(t)
	y := t.Year() - n
	d := t.Day()
	if t.Month() == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, t.Month(), d, 0, 0, 0, 0, time.UTC)
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// AgeAt returns the completed years between birth and at.
func AgeAt(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years
}

// Format renders a date column; the zero time renders as an empty cell.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
