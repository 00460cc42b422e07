// Package report assembles, prints and persists the digest of a
// replay run.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/Shivesh777/nanotick/internal/obs"
	"github.com/Shivesh777/nanotick/internal/stats"
)

// Report bundles everything one replay run produced. TicksPerNS is
// the measured tick rate of the latency clock; zero means no
// calibration was taken.
type Report struct {
	RunID      string        `json:"runId"`
	CreatedAt  time.Time     `json:"createdAt"`
	InputPath  string        `json:"inputPath"`
	Summary    stats.Summary `json:"summary"`
	Counters   obs.Snapshot  `json:"counters"`
	Books      int           `json:"books"`
	Symbols    []string      `json:"symbols"`
	TicksPerNS float64       `json:"ticksPerNs,omitempty"`
}

// WriteJSON writes a report to disk as indented JSON.
func WriteJSON(path string, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a report from disk.
func ReadJSON(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}
