package lockgate

import (
	"fmt"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
)

// LockTimestamp returns the UTC instant at lockHourUTC:00:00 of the given day.
func LockTimestamp(dateKey string, lockHourUTC int) (time.Time, error) {
	if lockHourUTC < 0 || lockHourUTC > 23 {
		return time.Time{}, fmt.Errorf("lock hour %d is outside 0-23", lockHourUTC)
	}

	day, err := datekey.Parse(dateKey)
	if err != nil {
		return time.Time{}, err
	}

	return day.Add(time.Duration(lockHourUTC) * time.Hour), nil
}

// IsLocked reports whether now is at or after the lock instant of the day.
func IsLocked(dateKey string, lockHourUTC int, now time.Time) (bool, error) {
	lockAt, err := LockTimestamp(dateKey, lockHourUTC)
	if err != nil {
		return false, err
	}

	return !now.Before(lockAt), nil
}

// LockedDays returns the keys, among today and the previous days in the window, whose gate already closed.
// Used by the sweep that flips the stored lineup flags.
func LockedDays(lockHourUTC int, now time.Time, window int) ([]string, error) {
	days := make([]string, 0, window+1)

	for offset := 0; offset <= window; offset++ {
		key := datekey.FromTime(now.AddDate(0, 0, -offset))

		locked, err := IsLocked(key, lockHourUTC, now)
		if err != nil {
			return nil, err
		}

		if locked {
			days = append(days, key)
		}
	}

	return days, nil
}
