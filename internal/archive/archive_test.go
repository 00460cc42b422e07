package archive

import (
	"errors"
	"testing"
	"time"

	"github.com/Shivesh777/nanotick/internal/report"
	"github.com/Shivesh777/nanotick/internal/stats"
)

func testReport(id string, created time.Time, rows int64) report.Report {
	return report.Report{
		RunID:     id,
		CreatedAt: created,
		InputPath: "feed.parquet",
		Summary:   stats.Summary{Rows: rows, Unit: "cycles"},
		Books:     1,
		Symbols:   []string{"AAPL"},
	}
}

func TestArchivePutGetScan(t *testing.T) {
	a, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	runs := []report.Report{
		testReport("run-a", base, 10),
		testReport("run-b", base.Add(time.Hour), 20),
		testReport("run-c", base.Add(2*time.Hour), 30),
	}
	for _, rep := range runs {
		if err := a.Put(rep); err != nil {
			t.Fatalf("put %s: %v", rep.RunID, err)
		}
	}

	got, err := a.Get("run-b")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RunID != "run-b" || got.Summary.Rows != 20 {
		t.Fatalf("got = %+v, want run-b with 20 rows", got)
	}

	var order []string
	err = a.Scan(func(rep report.Report) error {
		order = append(order, rep.RunID)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []string{"run-a", "run-b", "run-c"}
	if len(order) != len(want) {
		t.Fatalf("scan order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("scan order = %v, want %v", order, want)
		}
	}
}

func TestArchiveGetMissing(t *testing.T) {
	a, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	if _, err := a.Get("no-such-run"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("err = %v, want ErrRunNotFound", err)
	}
}

func TestArchiveRecent(t *testing.T) {
	a, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		if err := a.Put(testReport(id, base.Add(time.Duration(i)*time.Hour), int64(i))); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	recved, err := a.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recved) != 2 || recved[0].RunID != "new" || recved[1].RunID != "mid" {
		t.Fatalf("recent = %+v, want new then mid", recved)
	}
}
