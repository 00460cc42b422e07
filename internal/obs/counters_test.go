package obs

import "testing"

func TestCountersSnapshot(t *testing.T) {
	c := NewCounters()
	c.IncAdd()
	c.IncAdd()
	c.IncCancel()
	c.IncExecute()
	c.IncReplace()
	c.IncUnknown()
	c.IncDuplicateAdd()
	c.IncCancelMiss()
	c.IncExecuteMiss()
	c.IncReplaceMiss()

	snap := c.Snapshot()
	if snap.Adds != 2 {
		t.Fatalf("adds = %d, want 2", snap.Adds)
	}
	if snap.Cancels != 1 || snap.Executes != 1 || snap.Replaces != 1 {
		t.Fatalf("message counts = %d/%d/%d, want 1/1/1", snap.Cancels, snap.Executes, snap.Replaces)
	}
	if snap.Unknown != 1 {
		t.Fatalf("unknown = %d, want 1", snap.Unknown)
	}
	if snap.Anomalies() != 5 {
		t.Fatalf("anomalies = %d, want 5", snap.Anomalies())
	}
}

func TestCountersSnapshotIsCopy(t *testing.T) {
	c := NewCounters()
	c.IncAdd()
	snap := c.Snapshot()
	c.IncAdd()
	if snap.Adds != 1 {
		t.Fatalf("snapshot mutated: adds = %d, want 1", snap.Adds)
	}
	if got := c.Snapshot().Adds; got != 2 {
		t.Fatalf("live adds = %d, want 2", got)
	}
}

func TestCountersNilReceiver(t *testing.T) {
	var c *Counters
	c.IncAdd()
	c.IncCancelMiss()
	c.IncUnknown()

	snap := c.Snapshot()
	if snap != (Snapshot{}) {
		t.Fatalf("nil counters snapshot = %+v, want zero", snap)
	}
}
