package clock

import (
	"testing"
	"time"
)

func TestNowIsMonotonic(t *testing.T) {
	prev := Now()
	for i := 0; i < 1_000_000; i++ {
		cur := Now()
		if cur < prev {
			t.Fatalf("tick went backwards: %d after %d", cur, prev)
		}
		prev = cur
	}
}

func TestNowAdvances(t *testing.T) {
	c0 := Now()
	time.Sleep(5 * time.Millisecond)
	c1 := Now()
	if c1 <= c0 {
		t.Fatalf("ticks did not advance across sleep: %d -> %d", c0, c1)
	}
}

func TestUnit(t *testing.T) {
	switch Unit() {
	case "cycles", "ns":
	default:
		t.Fatalf("unit = %q, want cycles or ns", Unit())
	}
}

func TestCalibrate(t *testing.T) {
	r := Calibrate(20 * time.Millisecond)
	if r <= 0 {
		t.Fatalf("ticks per ns = %v, want > 0", r)
	}
}

func BenchmarkNow(b *testing.B) {
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = Now()
	}
	_ = sink
}
