package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/stats"
)

func TestSessionReplayMixedStream(t *testing.T) {
	events := []schema.Event{
		{Ts: 1, OID: 1, Side: schema.SideBid, Px: 1000, Qty: 50, Type: schema.MsgAdd, Symbol: "AAPL"},
		{Ts: 2, OID: 2, Side: schema.SideAsk, Px: 1010, Qty: 20, Type: schema.MsgAdd, Symbol: "AAPL"},
		{Ts: 3, OID: 1, Side: schema.SideBid, Px: 2000, Qty: 5, Type: schema.MsgAdd, Symbol: "MSFT"},
		{Ts: 4, OID: 1, Qty: 10, Type: schema.MsgExecute, Symbol: "AAPL"},
		{Ts: 5, OID: 1, NewOID: 3, NewPx: 1005, NewQty: 60, Type: schema.MsgReplace, Symbol: "AAPL"},
		{Ts: 6, OID: 2, Type: schema.MsgCancel, Symbol: "AAPL"},
		{Ts: 7, OID: 99, Type: schema.MsgCancel, Symbol: "AAPL"},
		{Ts: 8, OID: 98, Qty: 1, Type: schema.MsgExecute, Symbol: "MSFT"},
		{Ts: 9, OID: 4, Type: schema.MsgType('X'), Symbol: "GOOG"},
	}

	s := NewSession(Config{Books: 4, OrdersPerBook: 16, LevelsPerSide: 8})
	res, err := s.Replay(events)
	require.NoError(t, err)

	assert.Equal(t, int64(len(events)), res.Summary.Rows)
	assert.GreaterOrEqual(t, res.Summary.WallSeconds, float64(0))
	assert.LessOrEqual(t, res.Summary.P50, res.Summary.P95)
	assert.LessOrEqual(t, res.Summary.P95, res.Summary.P99)
	assert.LessOrEqual(t, res.Summary.P99, res.Summary.Max)
	assert.Contains(t, []string{"cycles", "ns"}, res.Summary.Unit)

	assert.Equal(t, uint64(3), res.Counters.Adds)
	assert.Equal(t, uint64(2), res.Counters.Cancels)
	assert.Equal(t, uint64(2), res.Counters.Executes)
	assert.Equal(t, uint64(1), res.Counters.Replaces)
	assert.Equal(t, uint64(1), res.Counters.Unknown)
	assert.Equal(t, uint64(1), res.Counters.CancelMisses)
	assert.Equal(t, uint64(1), res.Counters.ExecuteMisses)
	assert.Equal(t, uint64(0), res.Counters.ReplaceMisses)

	assert.Equal(t, 3, res.Books)
	assert.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, res.Symbols)

	aapl, ok := s.Registry().Lookup("AAPL")
	require.True(t, ok)
	assert.Equal(t, 1, aapl.LiveCount())
	ord, ok := aapl.OrderByID(3)
	require.True(t, ok)
	assert.Equal(t, schema.SideBid, ord.Side)
	assert.Equal(t, schema.Price(1005), ord.Px)
	assert.Equal(t, schema.Qty(60), ord.Qty)
	q, ok := aapl.Level(schema.SideBid, 1005)
	require.True(t, ok)
	assert.Equal(t, schema.Qty(60), q)
	_, ok = aapl.Level(schema.SideBid, 1000)
	assert.False(t, ok)
	_, ok = aapl.Level(schema.SideAsk, 1010)
	assert.False(t, ok)
}

func TestSessionReplayEmptyStream(t *testing.T) {
	s := NewSession(Config{})
	_, err := s.Replay(nil)
	require.ErrorIs(t, err, stats.ErrNoSamples)
}

func TestSessionUnknownTagStillCreatesBook(t *testing.T) {
	s := NewSession(Config{})
	res, err := s.Replay([]schema.Event{
		{OID: 1, Type: schema.MsgType('Z'), Symbol: "TSLA"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Books)
	assert.Equal(t, uint64(1), res.Counters.Unknown)
	bk, ok := s.Registry().Lookup("TSLA")
	require.True(t, ok)
	assert.Equal(t, 0, bk.LiveCount())
}

func TestSessionPreservesArrivalOrder(t *testing.T) {
	cancelFirst := NewSession(Config{})
	res1, err := cancelFirst.Replay([]schema.Event{
		{OID: 1, Type: schema.MsgCancel, Symbol: "AAPL"},
		{OID: 1, Side: schema.SideBid, Px: 100, Qty: 50, Type: schema.MsgAdd, Symbol: "AAPL"},
	})
	require.NoError(t, err)

	addFirst := NewSession(Config{})
	res2, err := addFirst.Replay([]schema.Event{
		{OID: 1, Side: schema.SideBid, Px: 100, Qty: 50, Type: schema.MsgAdd, Symbol: "AAPL"},
		{OID: 1, Type: schema.MsgCancel, Symbol: "AAPL"},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), res1.Counters.CancelMisses)
	assert.Equal(t, uint64(0), res2.Counters.CancelMisses)

	bk1, _ := cancelFirst.Registry().Lookup("AAPL")
	bk2, _ := addFirst.Registry().Lookup("AAPL")
	assert.Equal(t, 1, bk1.LiveCount())
	assert.Equal(t, 0, bk2.LiveCount())
}

func BenchmarkSessionReplay(b *testing.B) {
	events := make([]schema.Event, 0, 4096)
	for i := 0; i < 1024; i++ {
		oid := uint64(i + 1)
		px := schema.Price(10000 + i%32)
		side := schema.Side(i % 2)
		events = append(events,
			schema.Event{OID: oid, Side: side, Px: px, Qty: 10, Type: schema.MsgAdd, Symbol: "BENCH"},
			schema.Event{OID: oid, Qty: 4, Type: schema.MsgExecute, Symbol: "BENCH"},
			schema.Event{OID: oid, NewOID: oid + 1_000_000, NewPx: px + 1, NewQty: 6, Type: schema.MsgReplace, Symbol: "BENCH"},
			schema.Event{OID: oid + 1_000_000, Type: schema.MsgCancel, Symbol: "BENCH"},
		)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSession(Config{Books: 1, OrdersPerBook: 2048, LevelsPerSide: 64})
		if _, err := s.Replay(events); err != nil {
			b.Fatal(err)
		}
	}
}
