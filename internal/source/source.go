// Package source decodes persisted event feeds into the ordered event
// slice the replay loop consumes. It recognizes parquet files, jsonl
// files and ticklog segments or segment directories.
package source

import (
	"os"
	"strings"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/ticklog"
	"github.com/Shivesh777/nanotick/pkg/exception"
)

// Options controls decoding of formats that carry prices and
// quantities as decimal strings. A zero PriceScale falls back to the
// default; a zero QtyScale means integer quantities.
type Options struct {
	PriceScale int
	QtyScale   int
}

func (o Options) withDefaults() Options {
	if o.PriceScale <= 0 {
		o.PriceScale = schema.DefaultPriceScale
	}
	if o.QtyScale < 0 {
		o.QtyScale = schema.DefaultQtyScale
	}
	return o
}

// Load reads path fully into memory and returns its events in file
// order. The format is picked from the path: a directory or a
// .tick file loads through the ticklog reader, .parquet through the
// columnar reader, .jsonl and .ndjson line by line.
func Load(path string, opts Options) ([]schema.Event, error) {
	opts = opts.withDefaults()
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat source")
	}

	var events []schema.Event
	switch {
	case info.IsDir():
		events, err = loadTicklogDir(path)
	case strings.HasSuffix(path, ticklog.SegmentSuffix):
		events, err = loadTicklogFile(path)
	case strings.HasSuffix(path, ".parquet"):
		events, err = loadParquet(path)
	case strings.HasSuffix(path, ".jsonl"), strings.HasSuffix(path, ".ndjson"):
		events, err = loadJSONL(path, opts)
	default:
		return nil, errors.Wrapf(exception.ErrUnknownFeedFormat, "path: %s", path)
	}
	if err != nil {
		return nil, err
	}

	logs.Infof("source: loaded %d events from %s", len(events), path)
	return events, nil
}

// FilterSymbol keeps only events for symbol, preserving order. An
// empty symbol keeps everything. The input slice is reused.
func FilterSymbol(events []schema.Event, symbol string) []schema.Event {
	if symbol == "" {
		return events
	}
	out := events[:0]
	for i := range events {
		if events[i].Symbol == symbol {
			out = append(out, events[i])
		}
	}
	return out
}
