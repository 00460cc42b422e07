package codec

import (
	"encoding/binary"

	"github.com/Shivesh777/nanotick/internal/schema"
)

// EventPayloadSize is the wire size of one encoded event.
const EventPayloadSize = 50

const symbolWireLen = 8

// EncodeEvent serializes an event into a fixed-size payload. Symbols
// longer than eight bytes are truncated.
func EncodeEvent(dst []byte, ev schema.Event) []byte {
	if cap(dst) < EventPayloadSize {
		dst = make([]byte, EventPayloadSize)
	} else {
		dst = dst[:EventPayloadSize]
	}

	binary.LittleEndian.PutUint64(dst[0:8], ev.Ts)
	binary.LittleEndian.PutUint64(dst[8:16], ev.OID)
	binary.LittleEndian.PutUint64(dst[16:24], ev.NewOID)
	binary.LittleEndian.PutUint32(dst[24:28], uint32(ev.Px))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(ev.Qty))
	binary.LittleEndian.PutUint32(dst[32:36], uint32(ev.NewPx))
	binary.LittleEndian.PutUint32(dst[36:40], uint32(ev.NewQty))
	dst[40] = byte(ev.Side)
	dst[41] = byte(ev.Type)

	sym := dst[42 : 42+symbolWireLen]
	for i := range sym {
		sym[i] = 0
	}
	copy(sym, ev.Symbol)

	return dst
}

// DecodeEvent parses a fixed-size event payload.
func DecodeEvent(src []byte) (schema.Event, bool) {
	if len(src) < EventPayloadSize {
		return schema.Event{}, false
	}
	sym := src[42 : 42+symbolWireLen]
	end := len(sym)
	for end > 0 && sym[end-1] == 0 {
		end--
	}
	return schema.Event{
		Ts:     binary.LittleEndian.Uint64(src[0:8]),
		OID:    binary.LittleEndian.Uint64(src[8:16]),
		NewOID: binary.LittleEndian.Uint64(src[16:24]),
		Px:     schema.Price(binary.LittleEndian.Uint32(src[24:28])),
		Qty:    schema.Qty(binary.LittleEndian.Uint32(src[28:32])),
		NewPx:  schema.Price(binary.LittleEndian.Uint32(src[32:36])),
		NewQty: schema.Qty(binary.LittleEndian.Uint32(src[36:40])),
		Side:   schema.Side(src[40]),
		Type:   schema.MsgType(src[41]),
		Symbol: string(sym[:end]),
	}, true
}
