package report

import (
	"fmt"
	"io"
	"strings"
)

const symbolsLineHead = 10

// Render writes the human readable run report.
// Latency lines carry the clock's native unit; when the unit is
// cycles and a calibration is present, nanosecond conversions follow.
func Render(w io.Writer, rep Report) {
	unit := rep.Summary.Unit
	if unit == "" {
		unit = "cycles"
	}

	fmt.Fprintf(w, "LOB Replay Metrics\n")
	fmt.Fprintf(w, "──────────────────\n")
	fmt.Fprintf(w, "Rows processed     : %d\n", rep.Summary.Rows)
	fmt.Fprintf(w, "Total wall time (s): %.6f\n", rep.Summary.WallSeconds)
	fmt.Fprintf(w, "Throughput (msg/s) : %.2f M\n", rep.Summary.Throughput/1e6)
	fmt.Fprintf(w, "Latency (%s) — p50 : %d\n", unit, rep.Summary.P50)
	fmt.Fprintf(w, "Latency (%s) — p95 : %d\n", unit, rep.Summary.P95)
	fmt.Fprintf(w, "Latency (%s) — p99 : %d\n", unit, rep.Summary.P99)
	fmt.Fprintf(w, "Latency (%s) — max : %d\n", unit, rep.Summary.Max)

	if unit == "cycles" && rep.TicksPerNS > 0 {
		toNS := func(v uint64) uint64 { return uint64(float64(v) / rep.TicksPerNS) }
		fmt.Fprintf(w, "Latency (ns) — p50 : %d\n", toNS(rep.Summary.P50))
		fmt.Fprintf(w, "Latency (ns) — p95 : %d\n", toNS(rep.Summary.P95))
		fmt.Fprintf(w, "Latency (ns) — p99 : %d\n", toNS(rep.Summary.P99))
		fmt.Fprintf(w, "Latency (ns) — max : %d\n", toNS(rep.Summary.Max))
	}

	c := rep.Counters
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Adds processed     : %d\n", c.Adds)
	fmt.Fprintf(w, "Cancels processed  : %d\n", c.Cancels)
	fmt.Fprintf(w, "Executes processed : %d\n", c.Executes)
	fmt.Fprintf(w, "Replaces processed : %d\n", c.Replaces)
	fmt.Fprintf(w, "Unknown tags       : %d\n", c.Unknown)
	fmt.Fprintf(w, "Duplicate adds     : %d\n", c.DuplicateAdds)
	fmt.Fprintf(w, "Cancel misses      : %d\n", c.CancelMisses)
	fmt.Fprintf(w, "Execute misses     : %d\n", c.ExecuteMisses)
	fmt.Fprintf(w, "Replace misses     : %d\n", c.ReplaceMisses)

	fmt.Fprintf(w, "\nOrder books created: %d\n", rep.Books)
	fmt.Fprintf(w, "Symbols processed: %s\n", symbolsLine(rep.Symbols))
}

func symbolsLine(symbols []string) string {
	if len(symbols) <= symbolsLineHead {
		return strings.Join(symbols, ", ")
	}
	return fmt.Sprintf("%s (and %d more)",
		strings.Join(symbols[:symbolsLineHead], ", "), len(symbols)-symbolsLineHead)
}
