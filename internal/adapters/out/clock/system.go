// Package clock provides the wall clock used outside tests.
package clock

import "time"

// System returns the current time in UTC truncated to microseconds, the
// resolution PostgreSQL keeps.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
