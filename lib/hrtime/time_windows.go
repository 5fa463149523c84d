//go:build windows
// +build windows

package hrtime

import (
	"time"
)

var (
	appStartTime time.Time

	// Windows has no CLOCK_MONOTONIC; both clocks fall back to the
	// runtime's monotonic reading.
	UnixMonotonicClock Clock = &goNonSysClockTime{}
	GoMonotonicClock   Clock = &goNonSysClockTime{}
)

func init() {
	appStartTime = time.Now()
}

type goNonSysClockTime struct{}

func (g *goNonSysClockTime) NowInUTC() time.Time {
	return time.Now().UTC()
}

func (g *goNonSysClockTime) MonotonicElapsed() time.Duration {
	return time.Since(appStartTime)
}

func (g *goNonSysClockTime) Since(begin time.Duration) time.Duration {
	return g.MonotonicElapsed() - begin
}
