package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Default fixed-point scales for feeds that carry decimal numbers.
// Integer feeds (Parquet, ticklog) store already-scaled values and
// never consult these.
const (
	DefaultPriceScale = 4
	DefaultQtyScale   = 0
)

// Price is a scaled unsigned integer. The scale is defined by configuration.
type Price uint32

func (p Price) AppendString(priceScale int, buf []byte) []byte {
	return appendScaledUint(buf, uint64(p), priceScale)
}

// Qty is a scaled unsigned integer. The scale is defined by configuration.
type Qty uint32

func (q Qty) AppendString(qtyScale int, buf []byte) []byte {
	return appendScaledUint(buf, uint64(q), qtyScale)
}

func appendScaledUint(buf []byte, value uint64, scale int) []byte {
	if scale <= 0 {
		return strconv.AppendUint(buf, value, 10)
	}

	var tmp [32]byte
	digits := strconv.AppendUint(tmp[:0], value, 10)

	if len(digits) <= scale {
		buf = append(buf, '0', '.')
		for i := 0; i < scale-len(digits); i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
		return buf
	}

	idx := len(digits) - scale
	buf = append(buf, digits[:idx]...)
	buf = append(buf, '.')
	buf = append(buf, digits[idx:]...)
	return buf
}

const maxScaledValue = ^uint32(0)

// ParseScaled converts a non-negative decimal string into a scaled
// unsigned integer. Fractional digits beyond the scale are truncated.
func ParseScaled(s string, scale int) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	if scale < 0 {
		scale = 0
	}

	var v uint64
	for i := 0; i < len(intPart); i++ {
		c := intPart[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid digit %q in %q", c, s)
		}
		if v > uint64(maxScaledValue) {
			return 0, fmt.Errorf("number out of range: %q", s)
		}
		v = v*10 + uint64(c-'0')
	}
	for i := 0; i < scale; i++ {
		var d uint64
		if i < len(fracPart) {
			c := fracPart[i]
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("invalid digit %q in %q", c, s)
			}
			d = uint64(c - '0')
		}
		if v > uint64(maxScaledValue) {
			return 0, fmt.Errorf("number out of range: %q", s)
		}
		v = v*10 + d
	}
	for i := scale; i < len(fracPart); i++ {
		c := fracPart[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid digit %q in %q", c, s)
		}
	}
	if v > uint64(maxScaledValue) {
		return 0, fmt.Errorf("number out of range: %q", s)
	}
	return v, nil
}

// ParsePrice parses a decimal price string at the given scale.
func ParsePrice(s string, scale int) (Price, error) {
	v, err := ParseScaled(s, scale)
	if err != nil {
		return 0, err
	}
	return Price(v), nil
}

// ParseQty parses a decimal quantity string at the given scale.
func ParseQty(s string, scale int) (Qty, error) {
	v, err := ParseScaled(s, scale)
	if err != nil {
		return 0, err
	}
	return Qty(v), nil
}
