// Package replay drives a decoded event stream through the book
// registry one record at a time, bracketing every book operation with
// clock reads to collect the latency sample set.
package replay

import (
	"time"

	"github.com/Shivesh777/nanotick/internal/book"
	"github.com/Shivesh777/nanotick/internal/clock"
	"github.com/Shivesh777/nanotick/internal/obs"
	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/stats"
)

// Config sizes the state a session pre-allocates before the first
// event. Zero values fall back to package defaults downstream.
type Config struct {
	Books         int
	OrdersPerBook int
	LevelsPerSide int
}

// Session owns the registry, counters and samples of one replay run.
// It has no cancellation: a run applies the full stream or fails.
type Session struct {
	registry *book.Registry
	counters *obs.Counters
}

// NewSession returns a session with an empty registry sized per cfg.
func NewSession(cfg Config) *Session {
	counters := obs.NewCounters()
	hints := book.Hints{Orders: cfg.OrdersPerBook, Levels: cfg.LevelsPerSide}
	return &Session{
		registry: book.NewRegistry(cfg.Books, hints, counters),
		counters: counters,
	}
}

// Result is the digest of one replayed stream.
type Result struct {
	Summary  stats.Summary
	Counters obs.Snapshot
	Books    int
	Symbols  []string
}

// Replay applies events strictly in slice order and returns the run
// digest. Book operations do not commute, so events are never
// reordered or batched. The latency bracket spans book resolution and
// the book operation only; counting and the wall clock stay outside
// it. An empty stream returns stats.ErrNoSamples.
func (s *Session) Replay(events []schema.Event) (Result, error) {
	samples := stats.NewSampleSet(len(events))

	t0 := time.Now()
	for i := range events {
		ev := &events[i]
		tic := clock.Now()
		s.apply(ev)
		toc := clock.Now()
		samples.Record(toc - tic)
		s.count(ev.Type)
	}
	wall := time.Since(t0)

	summary, err := samples.Aggregate(int64(len(events)), wall, clock.Unit())
	if err != nil {
		return Result{}, err
	}
	return Result{
		Summary:  summary,
		Counters: s.counters.Snapshot(),
		Books:    s.registry.Len(),
		Symbols:  s.registry.Symbols(),
	}, nil
}

// apply resolves the target book, then routes on the message tag. The
// book is resolved before the tag is inspected, so an unknown tag
// still creates the symbol's book.
func (s *Session) apply(ev *schema.Event) {
	bk := s.registry.GetOrCreate(ev.Symbol)
	switch ev.Type {
	case schema.MsgAdd:
		bk.Add(ev.OID, ev.Side, ev.Px, ev.Qty)
	case schema.MsgCancel:
		bk.Cancel(ev.OID)
	case schema.MsgExecute:
		bk.Execute(ev.OID, ev.Qty)
	case schema.MsgReplace:
		bk.Replace(ev.OID, ev.NewOID, ev.NewPx, ev.NewQty)
	}
}

func (s *Session) count(m schema.MsgType) {
	switch m {
	case schema.MsgAdd:
		s.counters.IncAdd()
	case schema.MsgCancel:
		s.counters.IncCancel()
	case schema.MsgExecute:
		s.counters.IncExecute()
	case schema.MsgReplace:
		s.counters.IncReplace()
	default:
		s.counters.IncUnknown()
	}
}

// Registry exposes the session's book set for inspection after a run.
func (s *Session) Registry() *book.Registry {
	return s.registry
}
