//go:build !amd64 && !arm64

package clock

import "time"

const unit = "ns"

var base = time.Now()

// Now reports monotonic nanoseconds since process start.
func Now() uint64 {
	return uint64(time.Since(base))
}
