package wire

import (
	"math"
	"strconv"
)

// Range validation for the integer members of the family. The valid range
// for a signed tag of width W is the half-open two's-complement interval
// [-2^(W-1), 2^(W-1)); for an unsigned tag it is [0, 2^W). Candidates are
// checked strictly and never clamped, wrapped or otherwise transformed.

// signedBounds returns the inclusive [min, max] range for a signed tag.
func signedBounds(bits uint8) (int64, int64) {
	if bits == 64 {
		return math.MinInt64, math.MaxInt64
	}
	max := int64(1)<<(bits-1) - 1
	return -max - 1, max
}

// unsignedMax returns the inclusive maximum for an unsigned tag.
func unsignedMax(bits uint8) uint64 {
	if bits == 64 {
		return math.MaxUint64
	}
	return uint64(1)<<bits - 1
}

// CheckInt validates a signed integer candidate against the tag's range.
// It returns a RangeError when the candidate does not fit and a TypeError
// when the tag is not an integer tag. It panics if the tag is not a member
// of the family.
func (t Tag) CheckInt(v int64) error {
	t.mustValid()
	switch t.Kind {
	case KindSigned:
		min, max := signedBounds(t.Bits)
		if v < min || v > max {
			return RangeError{Value: strconv.FormatInt(v, 10), Tag: t}
		}
		return nil
	case KindUnsigned:
		if v < 0 || uint64(v) > unsignedMax(t.Bits) {
			return RangeError{Value: strconv.FormatInt(v, 10), Tag: t}
		}
		return nil
	default:
		return TypeError{Want: t, Got: "int64"}
	}
}

// CheckUint validates an unsigned integer candidate against the tag's
// range. It returns a RangeError when the candidate does not fit and a
// TypeError when the tag is not an integer tag. It panics if the tag is
// not a member of the family.
func (t Tag) CheckUint(v uint64) error {
	t.mustValid()
	switch t.Kind {
	case KindUnsigned:
		if v > unsignedMax(t.Bits) {
			return RangeError{Value: strconv.FormatUint(v, 10), Tag: t}
		}
		return nil
	case KindSigned:
		_, max := signedBounds(t.Bits)
		if v > uint64(max) {
			return RangeError{Value: strconv.FormatUint(v, 10), Tag: t}
		}
		return nil
	default:
		return TypeError{Want: t, Got: "uint64"}
	}
}

// Check validates a dynamic candidate against the tag. Integer tags demand
// an integral candidate within the tag's range. Float tags demand a float
// candidate and accept any float unconditionally; range and precision are
// bounded only by the eventual binary encoding. F32 and F64 validate
// identically.
func (t Tag) Check(n Number) error {
	t.mustValid()
	switch t.Kind {
	case KindSigned, KindUnsigned:
		if i, ok := n.Int(); ok {
			return t.CheckInt(i)
		}
		if u, ok := n.Uint(); ok {
			return t.CheckUint(u)
		}
		return TypeError{Want: t, Got: n.kindName()}
	default: // KindFloat
		if _, ok := n.Float(); ok {
			return nil
		}
		return TypeError{Want: t, Got: n.kindName()}
	}
}
