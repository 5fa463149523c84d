package hrtime

import "time"

// Clock is a monotonic time source for measuring elapsed intervals.
// Wall-clock adjustments (NTP slew, manual changes) must not affect
// the readings.
type Clock interface {
	NowInUTC() time.Time
	MonotonicElapsed() time.Duration
	Since(begin time.Duration) time.Duration
}
