package datekey

import (
	"fmt"
	"time"
)

// Layout is the zero-padded YYYYMMDD format used for every day bucket.
// Lexicographic order on keys is the same as chronological order.
const Layout = "20060102"

// FromTime returns the UTC calendar day key of a given instant.
func FromTime(t time.Time) string {
	return t.UTC().Format(Layout)
}

// FromUnix returns the UTC calendar day key of a unix timestamp in seconds.
func FromUnix(seconds int64) string {
	return FromTime(time.Unix(seconds, 0))
}

// Parse converts a key back to the UTC midnight of its day.
func Parse(key string) (time.Time, error) {
	if len(key) != len(Layout) {
		return time.Time{}, fmt.Errorf("date key %q must have 8 digits", key)
	}

	for _, r := range key {
		if r < '0' || r > '9' {
			return time.Time{}, fmt.Errorf("date key %q must be numeric", key)
		}
	}

	day, err := time.ParseInLocation(Layout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date key %q is not a calendar date: %w", key, err)
	}

	return day, nil
}

// Valid reports whether the key is an 8-digit calendar date.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// AddDays shifts a key by the given number of days.
func AddDays(key string, days int) (string, error) {
	day, err := Parse(key)
	if err != nil {
		return "", err
	}
	return FromTime(day.AddDate(0, 0, days)), nil
}

// Today returns the key of the UTC day containing now.
func Today(now time.Time) string {
	return FromTime(now)
}
