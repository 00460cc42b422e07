package book

import (
	"github.com/Shivesh777/nanotick/internal/obs"
	"github.com/Shivesh777/nanotick/internal/schema"
)

// Order is one resting order tracked by a Book.
type Order struct {
	OID  uint64
	Px   schema.Price
	Qty  schema.Qty
	Side schema.Side
}

// Hints pre-sizes a Book's maps so the steady-state event path avoids
// rehashing. Zero or negative values fall back to defaults.
type Hints struct {
	Orders int
	Levels int
}

const (
	defaultOrderCapacity = 1024
	defaultLevelCapacity = 256
)

func (h Hints) withDefaults() Hints {
	if h.Orders <= 0 {
		h.Orders = defaultOrderCapacity
	}
	if h.Levels <= 0 {
		h.Levels = defaultLevelCapacity
	}
	return h
}

// Book holds the live resting orders of one symbol together with the
// aggregate quantity resting at each price level on each side. A Book
// has a single writer. Messages referencing state that is not there
// are absorbed without error and reported through the counters.
type Book struct {
	symbol   string
	live     map[uint64]Order
	levels   [2]map[schema.Price]schema.Qty
	counters *obs.Counters
}

// NewBook returns an empty book for symbol. counters may be nil.
func NewBook(symbol string, hints Hints, counters *obs.Counters) *Book {
	h := hints.withDefaults()
	return &Book{
		symbol: symbol,
		live:   make(map[uint64]Order, h.Orders),
		levels: [2]map[schema.Price]schema.Qty{
			make(map[schema.Price]schema.Qty, h.Levels),
			make(map[schema.Price]schema.Qty, h.Levels),
		},
		counters: counters,
	}
}

// Add inserts a resting order and grows its price-level aggregate,
// creating the level if absent. An oid that is already live is
// overwritten in place; the old order's aggregate contribution is left
// behind untouched and the case is counted.
func (b *Book) Add(oid uint64, side schema.Side, px schema.Price, qty schema.Qty) {
	if _, ok := b.live[oid]; ok {
		b.counters.IncDuplicateAdd()
	}
	b.live[oid] = Order{OID: oid, Px: px, Qty: qty, Side: side}
	b.levels[side.Index()][px] += qty
}

// Cancel removes a live order and returns its remaining quantity to
// the level aggregate. An oid that is not live is counted and ignored.
func (b *Book) Cancel(oid uint64) {
	ord, ok := b.live[oid]
	if !ok {
		b.counters.IncCancelMiss()
		return
	}
	b.reduceLevel(ord.Side, ord.Px, ord.Qty)
	delete(b.live, oid)
}

// Execute reduces a live order by up to qty. The decrement is clamped
// to the order's remaining quantity, so neither the order nor its
// level can go negative. An order executed to zero is removed. An oid
// that is not live is counted and ignored.
func (b *Book) Execute(oid uint64, qty schema.Qty) {
	ord, ok := b.live[oid]
	if !ok {
		b.counters.IncExecuteMiss()
		return
	}
	decr := qty
	if decr > ord.Qty {
		decr = ord.Qty
	}
	b.reduceLevel(ord.Side, ord.Px, decr)
	ord.Qty -= decr
	if ord.Qty == 0 {
		delete(b.live, oid)
		return
	}
	b.live[oid] = ord
}

// Replace cancels oid and adds a fresh order under newOID at the new
// price and quantity. The side is carried over from the original
// order. An oid that is not live is counted and ignored.
func (b *Book) Replace(oid, newOID uint64, newPx schema.Price, newQty schema.Qty) {
	ord, ok := b.live[oid]
	if !ok {
		b.counters.IncReplaceMiss()
		return
	}
	b.Cancel(oid)
	b.Add(newOID, ord.Side, newPx, newQty)
}

func (b *Book) reduceLevel(side schema.Side, px schema.Price, by schema.Qty) {
	lvl := b.levels[side.Index()]
	q, ok := lvl[px]
	if !ok {
		return
	}
	if q <= by {
		delete(lvl, px)
		return
	}
	lvl[px] = q - by
}

// Symbol returns the symbol this book tracks.
func (b *Book) Symbol() string {
	return b.symbol
}

// LiveCount returns the number of resting orders.
func (b *Book) LiveCount() int {
	return len(b.live)
}

// OrderByID returns the live order keyed by oid.
func (b *Book) OrderByID(oid uint64) (Order, bool) {
	ord, ok := b.live[oid]
	return ord, ok
}

// Level returns the aggregate quantity resting at px on side.
func (b *Book) Level(side schema.Side, px schema.Price) (schema.Qty, bool) {
	q, ok := b.levels[side.Index()][px]
	return q, ok
}

// Depth returns the number of populated price levels on side.
func (b *Book) Depth(side schema.Side) int {
	return len(b.levels[side.Index()])
}
