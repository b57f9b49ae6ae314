package util

import "time"

// Clock returns the current time; stores take one so tests can move time.
type Clock func() time.Time

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}
