package value

import "time"

const DateLayout = time.DateOnly

// Date drops the clock part of t, keeping the calendar date as observed in
// t's location, and returns it as midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s) //nolint:wrapcheck
}

// DaysBetween counts whole calendar days from one date to another. The result
// is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)) / (24 * time.Hour))
}

func AddDays(t time.Time, days int) time.Time {
	return Date(t).AddDate(0, 0, days)
}
