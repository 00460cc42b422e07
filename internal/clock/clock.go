// Package clock provides the raw tick source used to bracket book
// operations. On amd64 and arm64 a reading is a single unserialized
// counter instruction; other platforms fall back to the monotonic
// clock. Values are only meaningful as deltas on the same machine.
package clock

import "time"

// Unit names the unit of the values returned by Now.
func Unit() string {
	return unit
}

// Calibrate measures how many ticks elapse per nanosecond by sampling
// the tick source and the wall clock around a sleep. A zero result
// means the tick source did not advance with wall time.
func Calibrate(d time.Duration) float64 {
	if d <= 0 {
		d = 50 * time.Millisecond
	}
	t0 := time.Now()
	c0 := Now()
	time.Sleep(d)
	c1 := Now()
	elapsed := time.Since(t0)
	if elapsed <= 0 || c1 <= c0 {
		return 0
	}
	return float64(c1-c0) / float64(elapsed.Nanoseconds())
}
