// Package feedgen creates synthetic order flow for exercising the
// replay pipeline without a captured feed.
package feedgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Shivesh777/nanotick/internal/schema"
)

// Config tunes the synthetic stream.
type Config struct {
	Symbols []string
	BasePx  schema.Price
	PxBand  uint32
	BaseQty schema.Qty
	Seed    int64
}

type liveOrder struct {
	oid uint64
	qty schema.Qty
}

// Generator creates synthetic order flow. It mirrors the lifecycle of
// every order it emits, so cancels, executes and replaces always
// reference an order that is still open.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	index   int
	nextOID uint64
	live    map[string][]liveOrder
}

// NewGenerator creates a generator over the configured symbols.
func NewGenerator(cfg Config) (*Generator, error) {
	if len(cfg.Symbols) == 0 {
		return nil, fmt.Errorf("no symbols configured")
	}
	if cfg.BasePx == 0 {
		cfg.BasePx = 1000000
	}
	if cfg.BaseQty == 0 {
		cfg.BaseQty = 100
	}
	if cfg.PxBand == 0 {
		cfg.PxBand = 50
	}
	return &Generator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		nextOID: 1,
		live:    make(map[string][]liveOrder, len(cfg.Symbols)),
	}, nil
}

// Next creates the next event in sequence. Symbols rotate round-robin
// and the operation mix favors adds so books keep depth.
func (g *Generator) Next(now time.Time) schema.Event {
	symbol := g.cfg.Symbols[g.index]
	g.index = (g.index + 1) % len(g.cfg.Symbols)

	ev := schema.Event{
		Ts:     uint64(now.UnixNano()),
		Symbol: symbol,
	}
	op := g.rng.Intn(100)
	if len(g.live[symbol]) == 0 || op < 50 {
		g.fillAdd(&ev)
		return ev
	}
	switch {
	case op < 65:
		g.fillCancel(&ev, symbol)
	case op < 85:
		g.fillExecute(&ev, symbol)
	default:
		g.fillReplace(&ev, symbol)
	}
	return ev
}

func (g *Generator) fillAdd(ev *schema.Event) {
	ev.Type = schema.MsgAdd
	ev.OID = g.nextOID
	g.nextOID++
	ev.Side = schema.Side(g.rng.Intn(2))
	ev.Px = g.price()
	ev.Qty = g.qty()
	g.live[ev.Symbol] = append(g.live[ev.Symbol], liveOrder{oid: ev.OID, qty: ev.Qty})
}

func (g *Generator) fillCancel(ev *schema.Event, symbol string) {
	ord := g.removeLive(symbol, g.rng.Intn(len(g.live[symbol])))
	ev.Type = schema.MsgCancel
	ev.OID = ord.oid
}

func (g *Generator) fillExecute(ev *schema.Event, symbol string) {
	open := g.live[symbol]
	idx := g.rng.Intn(len(open))
	ord := &open[idx]
	ev.Type = schema.MsgExecute
	ev.OID = ord.oid
	exec := schema.Qty(1 + g.rng.Intn(int(ord.qty)))
	if g.rng.Intn(10) == 0 {
		// Occasional oversized execution; consumers clamp it to the
		// remaining quantity.
		exec = ord.qty + g.qty()
	}
	ev.Qty = exec
	if exec >= ord.qty {
		g.removeLive(symbol, idx)
		return
	}
	ord.qty -= exec
}

func (g *Generator) fillReplace(ev *schema.Event, symbol string) {
	open := g.live[symbol]
	ord := &open[g.rng.Intn(len(open))]
	ev.Type = schema.MsgReplace
	ev.OID = ord.oid
	ev.NewOID = g.nextOID
	g.nextOID++
	ev.NewPx = g.price()
	ev.NewQty = g.qty()
	ord.oid = ev.NewOID
	ord.qty = ev.NewQty
}

func (g *Generator) removeLive(symbol string, idx int) liveOrder {
	open := g.live[symbol]
	ord := open[idx]
	open[idx] = open[len(open)-1]
	g.live[symbol] = open[:len(open)-1]
	return ord
}

func (g *Generator) price() schema.Price {
	offset := schema.Price(g.rng.Intn(int(g.cfg.PxBand) + 1))
	half := schema.Price(g.cfg.PxBand / 2)
	px := g.cfg.BasePx + offset
	if px > half {
		px -= half
	}
	return px
}

func (g *Generator) qty() schema.Qty {
	return g.cfg.BaseQty + schema.Qty(g.rng.Intn(int(g.cfg.BaseQty)))
}
