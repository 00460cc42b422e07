// Package chaos injects recoverable feed anomalies into an event
// stream. Replay treats every injected record as a counted no-op, so
// chaos runs exercise the anomaly counters without corrupting book
// state.
package chaos

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Shivesh777/nanotick/internal/schema"
)

// Orphan references use oids far above anything a feed hands out, so
// they never collide with a real order.
const orphanOIDBase = uint64(1) << 62

const unknownTag = schema.MsgType('X')

// Config controls injection behavior. A zero rate disables that
// anomaly class.
type Config struct {
	Seed             int64
	OrphanRate       float64
	DuplicateOIDRate float64
	UnknownRate      float64
}

// Validate ensures the config is within supported ranges.
func (c Config) Validate() error {
	if c.OrphanRate < 0 || c.OrphanRate > 1 {
		return fmt.Errorf("orphanRate must be between 0 and 1")
	}
	if c.DuplicateOIDRate < 0 || c.DuplicateOIDRate > 1 {
		return fmt.Errorf("duplicateOidRate must be between 0 and 1")
	}
	if c.UnknownRate < 0 || c.UnknownRate > 1 {
		return fmt.Errorf("unknownRate must be between 0 and 1")
	}
	return nil
}

// Engine applies anomaly rules to events.
type Engine struct {
	cfg       Config
	rng       *rand.Rand
	orphanSeq uint64
}

// NewEngine creates an engine with validation.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UTC().UnixNano()
	}
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Process passes ev through and may append injected anomalies behind
// it. The original event is always first and never mutated.
func (e *Engine) Process(ev schema.Event) []schema.Event {
	if e == nil {
		return []schema.Event{ev}
	}
	out := []schema.Event{ev}
	if ev.Type == schema.MsgAdd && e.hit(e.cfg.DuplicateOIDRate) {
		dup := ev
		dup.Qty = ev.Qty + 1
		out = append(out, dup)
	}
	if e.hit(e.cfg.OrphanRate) {
		out = append(out, e.orphan(ev))
	}
	if e.hit(e.cfg.UnknownRate) {
		out = append(out, schema.Event{
			Ts:     ev.Ts,
			Type:   unknownTag,
			Symbol: ev.Symbol,
		})
	}
	return out
}

// orphan builds a cancel, execute or replace against an order id that
// was never added.
func (e *Engine) orphan(ev schema.Event) schema.Event {
	e.orphanSeq++
	ghost := schema.Event{
		Ts:     ev.Ts,
		OID:    orphanOIDBase + e.orphanSeq,
		Symbol: ev.Symbol,
	}
	switch e.rng.Intn(3) {
	case 0:
		ghost.Type = schema.MsgCancel
	case 1:
		ghost.Type = schema.MsgExecute
		ghost.Qty = 1
	default:
		ghost.Type = schema.MsgReplace
		e.orphanSeq++
		ghost.NewOID = orphanOIDBase + e.orphanSeq
		ghost.NewPx = ev.Px
		ghost.NewQty = 1
	}
	return ghost
}

func (e *Engine) hit(rate float64) bool {
	return rate > 0 && e.rng.Float64() < rate
}
