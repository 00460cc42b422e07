package stats

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestAggregateLiteral(t *testing.T) {
	values := make([]uint64, 100)
	for i := range values {
		values[i] = uint64(i + 1)
	}
	rand.New(rand.NewSource(3)).Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	s := NewSampleSet(len(values))
	for _, v := range values {
		s.Record(v)
	}

	sum, err := s.Aggregate(100, 2*time.Second, "cycles")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if sum.P50 != 51 {
		t.Fatalf("p50 = %d, want 51", sum.P50)
	}
	if sum.P99 != 100 {
		t.Fatalf("p99 = %d, want 100", sum.P99)
	}
	if sum.Max != 100 {
		t.Fatalf("max = %d, want 100", sum.Max)
	}
	if sum.P50 > sum.P95 || sum.P95 > sum.P99 {
		t.Fatalf("percentiles not ordered: %d/%d/%d", sum.P50, sum.P95, sum.P99)
	}
	if sum.Rows != 100 || sum.WallSeconds != 2 || sum.Throughput != 50 {
		t.Fatalf("rows/wall/throughput = %d/%v/%v, want 100/2/50", sum.Rows, sum.WallSeconds, sum.Throughput)
	}
	if sum.Unit != "cycles" {
		t.Fatalf("unit = %q, want cycles", sum.Unit)
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := NewSampleSet(0)
	if _, err := s.Aggregate(0, time.Second, "cycles"); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("err = %v, want ErrNoSamples", err)
	}
}

func TestAggregateSingleSample(t *testing.T) {
	s := NewSampleSet(1)
	s.Record(42)
	sum, err := s.Aggregate(1, time.Millisecond, "ns")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if sum.P50 != 42 || sum.P95 != 42 || sum.P99 != 42 || sum.Max != 42 {
		t.Fatalf("summary = %+v, want all 42", sum)
	}
}

func TestAggregateZeroWall(t *testing.T) {
	s := NewSampleSet(1)
	s.Record(1)
	sum, err := s.Aggregate(1, 0, "cycles")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if sum.Throughput != 0 {
		t.Fatalf("throughput = %v, want 0", sum.Throughput)
	}
}

func TestPercentileMonotonic(t *testing.T) {
	sorted := []uint64{3, 3, 7, 9, 14, 14, 20, 50, 51, 90, 120}
	ps := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99, 1}
	for i, p1 := range ps {
		for _, p2 := range ps[i:] {
			v1, v2 := Percentile(sorted, p1), Percentile(sorted, p2)
			if v1 > v2 {
				t.Fatalf("percentile(%v) = %d > percentile(%v) = %d", p1, v1, p2, v2)
			}
		}
	}
	if got := Percentile(sorted, 1); got != 120 {
		t.Fatalf("percentile(1) = %d, want clamped max 120", got)
	}
}
