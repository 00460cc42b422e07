// Package stats turns the latency sample set of a replay run into the
// percentile summary the report prints.
package stats

import (
	"errors"
	"sort"
	"time"
)

// ErrNoSamples reports an aggregation over an empty sample set.
var ErrNoSamples = errors.New("stats: no samples recorded")

// SampleSet collects one duration per processed event, in arrival
// order.
type SampleSet struct {
	samples []uint64
}

// NewSampleSet returns a set pre-sized to hold capacity samples
// without growing.
func NewSampleSet(capacity int) *SampleSet {
	if capacity < 0 {
		capacity = 0
	}
	return &SampleSet{samples: make([]uint64, 0, capacity)}
}

// Record appends one latency sample.
func (s *SampleSet) Record(d uint64) {
	s.samples = append(s.samples, d)
}

// Len returns the number of recorded samples.
func (s *SampleSet) Len() int {
	return len(s.samples)
}

// Summary is the digest of one replay run. Latency values carry the
// unit of the clock that produced the samples.
type Summary struct {
	Rows        int64   `json:"rows"`
	WallSeconds float64 `json:"wallSeconds"`
	Throughput  float64 `json:"throughput"`
	P50         uint64  `json:"p50"`
	P95         uint64  `json:"p95"`
	P99         uint64  `json:"p99"`
	Max         uint64  `json:"max"`
	Unit        string  `json:"unit"`
}

// Percentile returns the sample at index floor(p * n) of an ascending
// sorted, non-empty set, clamped to the last index. Not interpolated.
func Percentile(sorted []uint64, p float64) uint64 {
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Aggregate sorts the set ascending in place and derives the summary.
// The call consumes the set: arrival order is destroyed and no further
// Record may follow. rows counts all processed events, wall is the
// duration of the whole dispatch loop, and unit names the clock unit
// of the samples. An empty set returns ErrNoSamples.
func (s *SampleSet) Aggregate(rows int64, wall time.Duration, unit string) (Summary, error) {
	n := len(s.samples)
	if n == 0 {
		return Summary{}, ErrNoSamples
	}
	sort.Slice(s.samples, func(i, j int) bool { return s.samples[i] < s.samples[j] })

	wallSeconds := wall.Seconds()
	var throughput float64
	if wallSeconds > 0 {
		throughput = float64(rows) / wallSeconds
	}
	return Summary{
		Rows:        rows,
		WallSeconds: wallSeconds,
		Throughput:  throughput,
		P50:         Percentile(s.samples, 0.50),
		P95:         Percentile(s.samples, 0.95),
		P99:         Percentile(s.samples, 0.99),
		Max:         s.samples[n-1],
		Unit:        unit,
	}, nil
}
