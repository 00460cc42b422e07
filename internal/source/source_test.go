package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivesh777/nanotick/internal/codec"
	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/ticklog"
	"github.com/Shivesh777/nanotick/pkg/exception"
)

func TestLoadJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.jsonl")
	lines := `{"ts":1,"oid":1,"side":0,"px":101.25,"qty":50,"m":"A","stock":"AAPL"}
{"ts":2,"oid":1,"side":0,"px":101.25,"qty":10,"m":"E","stock":"AAPL"}

{"ts":3,"oid":1,"side":0,"px":0,"qty":0,"m":"U","stock":"AAPL","new_oid":2,"new_px":102.5,"new_qty":40}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	events, err := Load(path, Options{})
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, schema.Event{
		Ts: 1, OID: 1, Px: 1012500, Qty: 50,
		Side: schema.SideBid, Type: schema.MsgAdd, Symbol: "AAPL",
	}, events[0])
	assert.Equal(t, schema.MsgExecute, events[1].Type)
	assert.Equal(t, schema.Qty(10), events[1].Qty)

	rep := events[2]
	assert.Equal(t, schema.MsgReplace, rep.Type)
	assert.Equal(t, uint64(2), rep.NewOID)
	assert.Equal(t, schema.Price(1025000), rep.NewPx)
	assert.Equal(t, schema.Qty(40), rep.NewQty)
}

func TestLoadJSONLMissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"ts":1,"oid":1,"side":0,"px":1,"m":"A","stock":"AAPL"}`), 0o644))

	_, err := Load(path, Options{})
	require.ErrorIs(t, err, exception.ErrMissingField)
	assert.Contains(t, err.Error(), "qty")
}

func TestLoadJSONLMissingReplaceFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"ts":1,"oid":1,"side":0,"px":1,"qty":1,"m":"U","stock":"AAPL"}`), 0o644))

	_, err := Load(path, Options{})
	require.ErrorIs(t, err, exception.ErrMissingField)
	assert.Contains(t, err.Error(), "new_oid")
}

func TestLoadJSONLInvalidSide(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"ts":1,"oid":1,"side":2,"px":1,"qty":1,"m":"A","stock":"AAPL"}`), 0o644))

	_, err := Load(path, Options{})
	require.ErrorIs(t, err, exception.ErrInvalidFieldValue)
}

func TestLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.parquet")
	rows := []TickRow{
		{Ts: 1, OID: 1, Side: 0, Px: 1012500, Qty: 50, M: "A", Stock: "AAPL"},
		{Ts: 2, OID: 2, Side: 1, Px: 1013000, Qty: 20, M: "A", Stock: "MSFT"},
		{Ts: 3, OID: 1, M: "C", Stock: "AAPL"},
		{Ts: 4, OID: 2, M: "U", Stock: "MSFT", NewOID: 3, NewPx: 1014000, NewQty: 15},
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	w := parquet.NewGenericWriter[TickRow](f)
	_, err = w.Write(rows)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	events, err := Load(path, Options{})
	require.NoError(t, err)
	require.Len(t, events, len(rows))
	for i, row := range rows {
		assert.Equal(t, row.Event(), events[i], "row %d", i)
	}
}

func TestLoadTicklog(t *testing.T) {
	dir := t.TempDir()
	cfg := ticklog.DefaultConfig(dir)
	cfg.CopyPayload = true

	w, err := ticklog.NewWriter(cfg)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	want := []schema.Event{
		{Ts: 1, OID: 1, Px: 1000, Qty: 5, Side: schema.SideBid, Type: schema.MsgAdd, Symbol: "AAPL"},
		{Ts: 2, OID: 1, Qty: 2, Type: schema.MsgExecute, Symbol: "AAPL"},
		{Ts: 3, OID: 1, Type: schema.MsgCancel, Symbol: "AAPL"},
	}
	var buf []byte
	for i, ev := range want {
		buf = codec.EncodeEvent(buf, ev)
		require.NoError(t, w.TryAppend(uint64(i+1), buf))
	}
	require.NoError(t, w.Close())

	events, err := Load(dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, want, events)

	files, err := ticklog.CollectFiles(dir, "")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	events, err = Load(files[0], Options{})
	require.NoError(t, err)
	assert.Equal(t, want, events)
}

func TestLoadUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.csv")
	require.NoError(t, os.WriteFile(path, []byte("ts,oid\n"), 0o644))

	_, err := Load(path, Options{})
	require.ErrorIs(t, err, exception.ErrUnknownFeedFormat)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.parquet"), Options{})
	require.Error(t, err)
}

func TestFilterSymbol(t *testing.T) {
	events := []schema.Event{
		{OID: 1, Symbol: "AAPL"},
		{OID: 2, Symbol: "MSFT"},
		{OID: 3, Symbol: "AAPL"},
	}
	got := FilterSymbol(events, "AAPL")
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].OID)
	assert.Equal(t, uint64(3), got[1].OID)

	all := []schema.Event{{OID: 9, Symbol: "GOOG"}}
	assert.Equal(t, all, FilterSymbol(all, ""))
}
