package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	"github.com/yanun0323/decimal"
	"github.com/yanun0323/errors"

	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/pkg/exception"
)

const maxJSONLineSize = 1 << 20

// jsonlRecord mirrors one feed line. Pointer fields distinguish an
// absent field from a zero value; the replace triple is only required
// on replace rows.
type jsonlRecord struct {
	Ts     *uint64          `json:"ts"`
	OID    *uint64          `json:"oid"`
	Side   *uint8           `json:"side"`
	Px     *decimal.Decimal `json:"px"`
	Qty    *decimal.Decimal `json:"qty"`
	M      *string          `json:"m"`
	Stock  *string          `json:"stock"`
	NewOID *uint64          `json:"new_oid"`
	NewPx  *decimal.Decimal `json:"new_px"`
	NewQty *decimal.Decimal `json:"new_qty"`
}

func loadJSONL(path string, opts Options) ([]schema.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open jsonl")
	}
	defer file.Close()

	var events []schema.Event
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxJSONLineSize)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec jsonlRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		ev, err := rec.event(opts)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan jsonl")
	}
	return events, nil
}

func (r jsonlRecord) event(opts Options) (schema.Event, error) {
	switch {
	case r.Ts == nil:
		return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: ts")
	case r.OID == nil:
		return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: oid")
	case r.Side == nil:
		return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: side")
	case r.Px == nil:
		return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: px")
	case r.Qty == nil:
		return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: qty")
	case r.M == nil:
		return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: m")
	case r.Stock == nil:
		return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: stock")
	}
	if *r.Side > 1 {
		return schema.Event{}, errors.Wrapf(exception.ErrInvalidFieldValue, "side: %d", *r.Side)
	}

	px, err := schema.ParsePrice((*r.Px).String(), opts.PriceScale)
	if err != nil {
		return schema.Event{}, errors.Wrap(err, "field: px")
	}
	qty, err := schema.ParseQty((*r.Qty).String(), opts.QtyScale)
	if err != nil {
		return schema.Event{}, errors.Wrap(err, "field: qty")
	}

	ev := schema.Event{
		Ts:     *r.Ts,
		OID:    *r.OID,
		Px:     px,
		Qty:    qty,
		Side:   schema.Side(*r.Side),
		Type:   schema.MsgTypeFromTag(*r.M),
		Symbol: *r.Stock,
	}

	if ev.Type == schema.MsgReplace {
		switch {
		case r.NewOID == nil:
			return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: new_oid")
		case r.NewPx == nil:
			return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: new_px")
		case r.NewQty == nil:
			return schema.Event{}, errors.Wrap(exception.ErrMissingField, "field: new_qty")
		}
		newPx, err := schema.ParsePrice((*r.NewPx).String(), opts.PriceScale)
		if err != nil {
			return schema.Event{}, errors.Wrap(err, "field: new_px")
		}
		newQty, err := schema.ParseQty((*r.NewQty).String(), opts.QtyScale)
		if err != nil {
			return schema.Event{}, errors.Wrap(err, "field: new_qty")
		}
		ev.NewOID = *r.NewOID
		ev.NewPx = newPx
		ev.NewQty = newQty
	}

	return ev, nil
}
