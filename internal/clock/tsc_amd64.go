package clock

const unit = "cycles"

// Now reads the processor timestamp counter.
//
//go:nosplit
func Now() uint64
