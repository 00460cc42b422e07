package codec

import (
	"testing"

	"github.com/Shivesh777/nanotick/internal/schema"
)

func TestEncodeDecodeEvent(t *testing.T) {
	ev := schema.Event{
		Ts:     1_700_000_123,
		OID:    42,
		NewOID: 43,
		Px:     1012500,
		Qty:    50,
		NewPx:  1013000,
		NewQty: 40,
		Side:   schema.SideAsk,
		Type:   schema.MsgReplace,
		Symbol: "AAPL",
	}

	buf := EncodeEvent(nil, ev)
	if len(buf) != EventPayloadSize {
		t.Fatalf("payload len = %d, want %d", len(buf), EventPayloadSize)
	}

	got, ok := DecodeEvent(buf)
	if !ok {
		t.Fatal("decode failed")
	}
	if got != ev {
		t.Fatalf("decoded = %+v, want %+v", got, ev)
	}
}

func TestEncodeEventReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, EventPayloadSize)
	out := EncodeEvent(buf, schema.Event{Symbol: "MSFT", Type: schema.MsgAdd})
	if &out[0] != &buf[:1][0] {
		t.Fatal("encode reallocated despite sufficient capacity")
	}
}

func TestEncodeEventTruncatesSymbol(t *testing.T) {
	buf := EncodeEvent(nil, schema.Event{Symbol: "LONGSYMBOL", Type: schema.MsgAdd})
	got, ok := DecodeEvent(buf)
	if !ok {
		t.Fatal("decode failed")
	}
	if got.Symbol != "LONGSYMB" {
		t.Fatalf("symbol = %q, want %q", got.Symbol, "LONGSYMB")
	}
}

func TestDecodeEventShortBuffer(t *testing.T) {
	if _, ok := DecodeEvent(make([]byte, EventPayloadSize-1)); ok {
		t.Fatal("decode accepted a short buffer")
	}
}
