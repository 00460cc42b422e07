package schema

import "strconv"

// MsgType is the single-byte message tag of a feed record.
type MsgType byte

const (
	MsgUnknown MsgType = 0
	MsgAdd     MsgType = 'A'
	MsgCancel  MsgType = 'C'
	MsgExecute MsgType = 'E'
	MsgReplace MsgType = 'U'
)

// MsgTypeFromTag maps a feed tag string to a MsgType.
// Empty and multi-byte tags are unrecognized; dispatch treats any
// unrecognized type as a no-op.
func MsgTypeFromTag(tag string) MsgType {
	if len(tag) != 1 {
		return MsgUnknown
	}
	return MsgType(tag[0])
}

// Tag returns the wire form of the message type.
func (m MsgType) Tag() string {
	if m == MsgUnknown {
		return ""
	}
	return string([]byte{byte(m)})
}

func (m MsgType) String() string {
	switch m {
	case MsgAdd:
		return "Add"
	case MsgCancel:
		return "Cancel"
	case MsgExecute:
		return "Execute"
	case MsgReplace:
		return "Replace"
	default:
		return "Unknown(" + strconv.Itoa(int(m)) + ")"
	}
}

// Side identifies the book side an order rests on. The feed encodes
// 0 as bid and 1 as ask.
type Side uint8

const (
	SideBid Side = 0
	SideAsk Side = 1
)

// Index folds a side into a two-element level-map index. Any non-zero
// value lands on the ask slot.
func (s Side) Index() int {
	if s == SideBid {
		return 0
	}
	return 1
}

func (s Side) String() string {
	if s == SideBid {
		return "bid"
	}
	return "ask"
}

// Event is one replayable feed record. The replace fields NewOID, NewPx
// and NewQty are meaningful only when Type is MsgReplace. Events are
// produced by the source layer and read by value; the replay core never
// mutates them.
type Event struct {
	Ts     uint64
	OID    uint64
	NewOID uint64
	Px     Price
	Qty    Qty
	NewPx  Price
	NewQty Qty
	Side   Side
	Type   MsgType
	Symbol string
}

// Debug returns a human readable format string
func (e Event) Debug() string {
	buf := make([]byte, 0, 128)
	buf = append(buf, "Event{ts="...)
	buf = strconv.AppendUint(buf, e.Ts, 10)
	buf = append(buf, " m="...)
	buf = append(buf, e.Type.String()...)
	buf = append(buf, " stock="...)
	buf = append(buf, e.Symbol...)
	buf = append(buf, " oid="...)
	buf = strconv.AppendUint(buf, e.OID, 10)
	buf = append(buf, " side="...)
	buf = append(buf, e.Side.String()...)
	buf = append(buf, " px="...)
	buf = e.Px.AppendString(DefaultPriceScale, buf)
	buf = append(buf, " qty="...)
	buf = e.Qty.AppendString(DefaultQtyScale, buf)
	if e.Type == MsgReplace {
		buf = append(buf, " new_oid="...)
		buf = strconv.AppendUint(buf, e.NewOID, 10)
		buf = append(buf, " new_px="...)
		buf = e.NewPx.AppendString(DefaultPriceScale, buf)
		buf = append(buf, " new_qty="...)
		buf = e.NewQty.AppendString(DefaultQtyScale, buf)
	}
	buf = append(buf, '}')
	return string(buf)
}
