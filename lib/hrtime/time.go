//go:build !windows
// +build !windows

package hrtime

import (
	"time"

	"github.com/samber/lo"
	"golang.org/x/sys/unix"
)

var (
	appStartTime         time.Time
	unixMonotonicStartTs int64

	// UnixMonotonicClock reads CLOCK_MONOTONIC directly, bypassing
	// the Go runtime's cached wall reading.
	UnixMonotonicClock Clock = &unixNonSysClockTime{}
	// GoMonotonicClock rides on the monotonic component embedded in
	// time.Time by the runtime.
	GoMonotonicClock Clock = &goNonSysClockTime{}
)

func init() {
	appStartTime = time.Now()
	ts := unix.Timespec{}
	lo.Must0(unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts))
	unixMonotonicStartTs = ts.Nano()
}

type unixNonSysClockTime struct{}

func (u *unixNonSysClockTime) NowInUTC() time.Time {
	return appStartTime.Add(u.MonotonicElapsed()).UTC()
}

func (u *unixNonSysClockTime) MonotonicElapsed() time.Duration {
	ts := unix.Timespec{}
	lo.Must0(unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts))
	return time.Duration(ts.Nano() - unixMonotonicStartTs)
}

func (u *unixNonSysClockTime) Since(begin time.Duration) time.Duration {
	return u.MonotonicElapsed() - begin
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
