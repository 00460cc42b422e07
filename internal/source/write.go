package source

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"github.com/Shivesh777/nanotick/internal/codec"
	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/ticklog"
	"github.com/Shivesh777/nanotick/pkg/exception"
)

// Save writes events to path in the format implied by its name:
// .parquet, .jsonl/.ndjson, or a ticklog directory when the path has
// no extension.
func Save(path string, events []schema.Event, opts Options) error {
	opts = opts.withDefaults()
	var err error
	switch {
	case strings.HasSuffix(path, ".parquet"):
		err = WriteParquet(path, events)
	case strings.HasSuffix(path, ".jsonl"), strings.HasSuffix(path, ".ndjson"):
		err = WriteJSONL(path, events, opts)
	case filepath.Ext(path) == "":
		err = WriteTicklog(path, events)
	default:
		return errors.Wrapf(exception.ErrUnknownFeedFormat, "path: %s", path)
	}
	if err != nil {
		return err
	}
	logs.Infof("source: wrote %d events to %s", len(events), path)
	return nil
}

// WriteParquet writes events as one row group in the columnar layout.
func WriteParquet(path string, events []schema.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create parquet")
	}
	rows := make([]TickRow, len(events))
	for i := range events {
		rows[i] = RowFromEvent(events[i])
	}
	w := parquet.NewGenericWriter[TickRow](f)
	if _, err := w.Write(rows); err != nil {
		_ = w.Close()
		_ = f.Close()
		return errors.Wrap(err, "write parquet")
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "close parquet")
	}
	return f.Close()
}

type jsonlOut struct {
	Ts     uint64          `json:"ts"`
	OID    uint64          `json:"oid"`
	Side   uint8           `json:"side"`
	Px     json.RawMessage `json:"px"`
	Qty    json.RawMessage `json:"qty"`
	M      string          `json:"m"`
	Stock  string          `json:"stock"`
	NewOID *uint64         `json:"new_oid,omitempty"`
	NewPx  json.RawMessage `json:"new_px,omitempty"`
	NewQty json.RawMessage `json:"new_qty,omitempty"`
}

// WriteJSONL writes one record per line with decimal prices and
// quantities at the configured scales. Replace rows carry the new_*
// fields, everything else omits them.
func WriteJSONL(path string, events []schema.Event, opts Options) error {
	opts = opts.withDefaults()
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create jsonl")
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := range events {
		ev := &events[i]
		rec := jsonlOut{
			Ts:    ev.Ts,
			OID:   ev.OID,
			Side:  uint8(ev.Side),
			Px:    json.RawMessage(ev.Px.AppendString(opts.PriceScale, nil)),
			Qty:   json.RawMessage(ev.Qty.AppendString(opts.QtyScale, nil)),
			M:     ev.Type.Tag(),
			Stock: ev.Symbol,
		}
		if ev.Type == schema.MsgReplace {
			rec.NewOID = &ev.NewOID
			rec.NewPx = json.RawMessage(ev.NewPx.AppendString(opts.PriceScale, nil))
			rec.NewQty = json.RawMessage(ev.NewQty.AppendString(opts.QtyScale, nil))
		}
		if err := enc.Encode(rec); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "encode line %d", i+1)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "flush jsonl")
	}
	return f.Close()
}

// WriteTicklog appends events to a fresh segment sequence under dir.
// Appends are retried when the writer queue is saturated, so the call
// is effectively blocking.
func WriteTicklog(dir string, events []schema.Event) error {
	w, err := ticklog.NewWriter(ticklog.DefaultConfig(dir))
	if err != nil {
		return errors.Wrap(err, "ticklog writer")
	}
	if err := w.Start(context.Background()); err != nil {
		return errors.Wrap(err, "ticklog start")
	}
	for i := range events {
		payload := codec.EncodeEvent(nil, events[i])
		for {
			err := w.TryAppend(uint64(i+1), payload)
			if err == nil {
				break
			}
			if err == ticklog.ErrQueueFull {
				time.Sleep(time.Millisecond)
				continue
			}
			_ = w.Close()
			return errors.Wrapf(err, "append record %d", i+1)
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "ticklog close")
	}
	return w.Err()
}
