package obs

// Counters tracks message-type and recoverable-anomaly counts for one
// replay session. Fields are plain integers: a session has exactly one
// writer, and sharded runs get one Counters each, so the hot path stays
// free of atomics. Not safe for concurrent use.
type Counters struct {
	adds     uint64
	cancels  uint64
	executes uint64
	replaces uint64
	unknown  uint64

	duplicateAdds uint64
	cancelMisses  uint64
	executeMisses uint64
	replaceMisses uint64
}

// Snapshot is a point-in-time copy of the counter values.
type Snapshot struct {
	Adds     uint64 `json:"adds"`
	Cancels  uint64 `json:"cancels"`
	Executes uint64 `json:"executes"`
	Replaces uint64 `json:"replaces"`
	Unknown  uint64 `json:"unknown"`

	DuplicateAdds uint64 `json:"duplicateAdds"`
	CancelMisses  uint64 `json:"cancelMisses"`
	ExecuteMisses uint64 `json:"executeMisses"`
	ReplaceMisses uint64 `json:"replaceMisses"`
}

// NewCounters allocates a counter set.
func NewCounters() *Counters {
	return &Counters{}
}

// IncAdd records a dispatched add message.
func (c *Counters) IncAdd() {
	if c == nil {
		return
	}
	c.adds++
}

// IncCancel records a dispatched cancel message.
func (c *Counters) IncCancel() {
	if c == nil {
		return
	}
	c.cancels++
}

// IncExecute records a dispatched execute message.
func (c *Counters) IncExecute() {
	if c == nil {
		return
	}
	c.executes++
}

// IncReplace records a dispatched replace message.
func (c *Counters) IncReplace() {
	if c == nil {
		return
	}
	c.replaces++
}

// IncUnknown records a message with an unrecognized tag.
func (c *Counters) IncUnknown() {
	if c == nil {
		return
	}
	c.unknown++
}

// IncDuplicateAdd records an add whose oid was already live.
func (c *Counters) IncDuplicateAdd() {
	if c == nil {
		return
	}
	c.duplicateAdds++
}

// IncCancelMiss records a cancel referencing a non-live oid.
func (c *Counters) IncCancelMiss() {
	if c == nil {
		return
	}
	c.cancelMisses++
}

// IncExecuteMiss records an execute referencing a non-live oid.
func (c *Counters) IncExecuteMiss() {
	if c == nil {
		return
	}
	c.executeMisses++
}

// IncReplaceMiss records a replace referencing a non-live oid.
func (c *Counters) IncReplaceMiss() {
	if c == nil {
		return
	}
	c.replaceMisses++
}

// Snapshot returns a copy of the current counter values.
func (c *Counters) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Adds:          c.adds,
		Cancels:       c.cancels,
		Executes:      c.executes,
		Replaces:      c.replaces,
		Unknown:       c.unknown,
		DuplicateAdds: c.duplicateAdds,
		CancelMisses:  c.cancelMisses,
		ExecuteMisses: c.executeMisses,
		ReplaceMisses: c.replaceMisses,
	}
}

// Anomalies reports the total count of silently absorbed feed noise.
func (s Snapshot) Anomalies() uint64 {
	return s.Unknown + s.DuplicateAdds + s.CancelMisses + s.ExecuteMisses + s.ReplaceMisses
}
