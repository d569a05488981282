package service

import "time"

// Clock returns the current instant. Tests substitute a controllable one.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
