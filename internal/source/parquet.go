package source

import (
	"github.com/parquet-go/parquet-go"
	"github.com/yanun0323/errors"

	"github.com/Shivesh777/nanotick/internal/schema"
)

// TickRow is the columnar layout of one event, matching the schema
// the feed conversion pipeline writes. Prices and quantities are
// already fixed-point scaled.
type TickRow struct {
	Ts     uint64 `parquet:"ts"`
	OID    uint64 `parquet:"oid"`
	Side   uint8  `parquet:"side"`
	Px     uint32 `parquet:"px"`
	Qty    uint32 `parquet:"qty"`
	M      string `parquet:"m"`
	Stock  string `parquet:"stock"`
	NewOID uint64 `parquet:"new_oid"`
	NewPx  uint32 `parquet:"new_px"`
	NewQty uint32 `parquet:"new_qty"`
}

// Event converts the row into the in-memory record.
func (r TickRow) Event() schema.Event {
	return schema.Event{
		Ts:     r.Ts,
		OID:    r.OID,
		NewOID: r.NewOID,
		Px:     schema.Price(r.Px),
		Qty:    schema.Qty(r.Qty),
		NewPx:  schema.Price(r.NewPx),
		NewQty: schema.Qty(r.NewQty),
		Side:   schema.Side(r.Side),
		Type:   schema.MsgTypeFromTag(r.M),
		Symbol: r.Stock,
	}
}

// RowFromEvent converts an in-memory record back into the columnar
// layout.
func RowFromEvent(ev schema.Event) TickRow {
	return TickRow{
		Ts:     ev.Ts,
		OID:    ev.OID,
		Side:   uint8(ev.Side),
		Px:     uint32(ev.Px),
		Qty:    uint32(ev.Qty),
		M:      ev.Type.Tag(),
		Stock:  ev.Symbol,
		NewOID: ev.NewOID,
		NewPx:  uint32(ev.NewPx),
		NewQty: uint32(ev.NewQty),
	}
}

func loadParquet(path string) ([]schema.Event, error) {
	rows, err := parquet.ReadFile[TickRow](path)
	if err != nil {
		return nil, errors.Wrap(err, "read parquet")
	}
	events := make([]schema.Event, len(rows))
	for i := range rows {
		events[i] = rows[i].Event()
	}
	return events, nil
}
