//go:build unix

// Package proctime reads the CPU time consumed by the current process.
// Result messages carry a processor-time delta rather than a wall-clock one:
// the interval between two recordings measures the compute cost of the work
// done in between, which is what pipeline profiling wants.
package proctime

import (
	"time"

	"golang.org/x/sys/unix"
)

// Now returns the total CPU time (user + system) consumed by the process.
// The value only ever grows, so deltas between calls are non-negative.
func Now() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return timevalDuration(ru.Utime) + timevalDuration(ru.Stime)
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
