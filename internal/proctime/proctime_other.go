//go:build !unix

package proctime

import "time"

// Platforms without rusage fall back to a monotonic wall clock. Deltas then
// measure elapsed time rather than CPU time consumed, a documented deviation.

var base = time.Now()

// Now returns the monotonic time elapsed since process start.
func Now() time.Duration {
	return time.Since(base)
}
