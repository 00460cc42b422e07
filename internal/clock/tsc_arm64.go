package clock

const unit = "cycles"

// Now reads the virtual counter-timer.
//
//go:nosplit
func Now() uint64
