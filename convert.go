package bignum

import (
	"math"
	"strings"
)

// String returns the decimal string representation of n, with a leading
// '-' when n is negative. The result always matches -?(0|[1-9][0-9]*).
func (n *BigInt) String() string {
	var b strings.Builder
	if n.sign {
		b.WriteByte('-')
	}
	for _, d := range n.digits {
		b.WriteByte('0' + d)
	}
	return b.String()
}

// Int64 converts n to a signed 64-bit integer. Values outside the
// representable range saturate at math.MinInt64 / math.MaxInt64 rather
// than wrapping; this is a deliberate, documented loss of precision, not
// an error.
func (n *BigInt) Int64() int64 {
	var mag uint64
	overflow := false
	for _, d := range n.digits {
		if mag > (math.MaxUint64-uint64(d))/10 {
			overflow = true
			break
		}
		mag = mag*10 + uint64(d)
	}
	if n.sign {
		if overflow || mag > uint64(math.MaxInt64)+1 {
			return math.MinInt64
		}
		if mag == uint64(math.MaxInt64)+1 {
			return math.MinInt64
		}
		return -int64(mag)
	}
	if overflow || mag > uint64(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(mag)
}

// Uint64 converts n to an unsigned 64-bit integer, ignoring sign. Values
// whose magnitude exceeds the representable range saturate at
// math.MaxUint64 rather than wrapping.
func (n *BigInt) Uint64() uint64 {
	var mag uint64
	for _, d := range n.digits {
		if mag > (math.MaxUint64-uint64(d))/10 {
			return math.MaxUint64
		}
		mag = mag*10 + uint64(d)
	}
	return mag
}
