package wire

import (
	"math"
	"math/bits"
	"reflect"
	"strconv"
)

// numType identifies the runtime kind held by a Number.
type numType uint8

const (
	numInvalid numType = iota
	numInt
	numUint
	numFloat32
	numFloat64
)

// Number represents a dynamic numeric candidate that may be an int64,
// uint64, float32, or float64 internally. It is the untyped scalar handled
// at deserialization and dictionary boundaries, before a tag has accepted
// it. The zero value is equivalent to an int64 value of 0.
type Number struct {
	bits uint64
	typ  numType
}

// AsInt sets the number to an int64.
func (n *Number) AsInt(i int64) {
	if i == 0 {
		n.typ = numInvalid
		n.bits = 0
		return
	}

	n.typ = numInt
	n.bits = uint64(i)
}

// AsUint sets the number to a uint64.
func (n *Number) AsUint(u uint64) {
	n.typ = numUint
	n.bits = u
}

// AsFloat32 sets the value of the number to a float32.
func (n *Number) AsFloat32(f float32) {
	n.typ = numFloat32
	n.bits = uint64(math.Float32bits(f))
}

// AsFloat64 sets the value of the number to a float64.
func (n *Number) AsFloat64(f float64) {
	n.typ = numFloat64
	n.bits = math.Float64bits(f)
}

// Int returns the value as an int64 and reports whether that was the
// underlying kind (or the zero value).
func (n Number) Int() (int64, bool) {
	return int64(n.bits), n.typ == numInt || n.typ == numInvalid
}

// Uint returns the value as a uint64 and reports whether that was the
// underlying kind.
func (n Number) Uint() (uint64, bool) {
	return n.bits, n.typ == numUint
}

// Float returns the value as a float64 and reports whether the underlying
// kind was float32 or float64.
func (n Number) Float() (float64, bool) {
	switch n.typ {
	case numFloat32:
		return float64(math.Float32frombits(uint32(n.bits))), true
	case numFloat64:
		return math.Float64frombits(n.bits), true
	default:
		return 0, false
	}
}

// Kind returns the validation category the candidate belongs to.
func (n Number) Kind() Kind {
	switch n.typ {
	case numUint:
		return KindUnsigned
	case numFloat32, numFloat64:
		return KindFloat
	default:
		return KindSigned
	}
}

// kindName returns the runtime kind for error messages.
func (n Number) kindName() string {
	switch n.typ {
	case numUint:
		return "uint64"
	case numFloat32:
		return "float32"
	case numFloat64:
		return "float64"
	default:
		return "int64"
	}
}

// Bind validates the candidate against the tag and, on success, returns a
// freshly constructed value instance holding it. Validation follows the
// tag's category: integral kind plus range for integer tags, float kind
// for float tags. The candidate itself is never modified.
func (n Number) Bind(t Tag) (Value, error) {
	if err := t.Check(n); err != nil {
		return nil, err
	}
	switch t.Kind {
	case KindSigned:
		// Check guarantees the candidate is integral and in range,
		// so the coercion cannot fail here.
		i, _ := n.CoerceInt()
		switch t.Bits {
		case 8:
			return NewI8(int8(i)), nil
		case 16:
			return NewI16(int16(i)), nil
		case 32:
			return NewI32(int32(i)), nil
		default:
			return NewI64(i), nil
		}
	case KindUnsigned:
		u, _ := n.CoerceUint()
		switch t.Bits {
		case 8:
			return NewU8(uint8(u)), nil
		case 16:
			return NewU16(uint16(u)), nil
		case 32:
			return NewU32(uint32(u)), nil
		default:
			return NewU64(u), nil
		}
	default: // KindFloat
		f := n.CoerceFloat()
		if t.Bits == 32 {
			return NewF32(float32(f)), nil
		}
		return NewF64(f), nil
	}
}

// FromAny binds an arbitrary Go scalar to the tag. Non-numeric candidates
// such as strings or bools are rejected with a TypeError carrying the
// candidate's Go type name.
func FromAny(t Tag, v any) (Value, error) {
	t.mustValid()
	var n Number
	switch v := v.(type) {
	case int:
		n.AsInt(int64(v))
	case int8:
		n.AsInt(int64(v))
	case int16:
		n.AsInt(int64(v))
	case int32:
		n.AsInt(int64(v))
	case int64:
		n.AsInt(v)
	case uint:
		n.AsUint(uint64(v))
	case uint8:
		n.AsUint(uint64(v))
	case uint16:
		n.AsUint(uint64(v))
	case uint32:
		n.AsUint(uint64(v))
	case uint64:
		n.AsUint(v)
	case float32:
		n.AsFloat32(v)
	case float64:
		n.AsFloat64(v)
	default:
		return nil, TypeError{Want: t, Got: reflect.TypeOf(v).String()}
	}
	return n.Bind(t)
}

// Floats at or above these round up past the corresponding integer max,
// so the bound must be strict. Both are exactly representable in float32
// and float64.
const (
	maxInt64Float  = 1 << 63
	maxUint64Float = 1 << 64
)

// CoerceInt attempts to coerce the value into an int64 without loss of
// precision and reports success.
func (n Number) CoerceInt() (int64, bool) {
	switch n.typ {
	case numInvalid, numInt:
		return int64(n.bits), true
	case numUint:
		return int64(n.bits), n.bits <= math.MaxInt64
	case numFloat32:
		f := math.Float32frombits(uint32(n.bits))
		if n.isExactInt() && f >= math.MinInt64 && f < maxInt64Float {
			return int64(f), true
		}
		return 0, n.bits == 0 || n.bits == 1<<31
	case numFloat64:
		f := math.Float64frombits(n.bits)
		if n.isExactInt() && f >= math.MinInt64 && f < maxInt64Float {
			return int64(f), true
		}
		return 0, n.bits == 0 || n.bits == 1<<63
	}
	return 0, false
}

// CoerceUint attempts to coerce the value into a uint64 without loss of
// precision and reports success.
func (n Number) CoerceUint() (uint64, bool) {
	switch n.typ {
	case numInvalid, numInt:
		if int64(n.bits) >= 0 {
			return n.bits, true
		}
	case numUint:
		return n.bits, true
	case numFloat32:
		f := math.Float32frombits(uint32(n.bits))
		if f >= 0 && f < maxUint64Float && n.isExactInt() {
			return uint64(f), true
		}
		return 0, n.bits == 0 || n.bits == 1<<31
	case numFloat64:
		f := math.Float64frombits(n.bits)
		if f >= 0 && f < maxUint64Float && n.isExactInt() {
			return uint64(f), true
		}
		return 0, n.bits == 0 || n.bits == 1<<63
	}
	return 0, false
}

// isExactInt reports whether the stored float value is an exact integer.
func (n Number) isExactInt() bool {
	var eBits, mBits int

	switch n.typ {
	case numInvalid, numInt, numUint:
		return true
	case numFloat32:
		eBits = 8
		mBits = 23
	case numFloat64:
		eBits = 11
		mBits = 52
	default:
		return false
	}

	exp := int(n.bits>>mBits) & ((1 << eBits) - 1)
	mant := n.bits & ((1 << mBits) - 1)
	if exp == 0 && mant == 0 {
		return true
	}

	exp -= (1 << (eBits - 1)) - 1
	if exp < 0 || exp == 1<<(eBits-1) {
		return false
	}
	if exp >= mBits {
		return true
	}
	return bits.TrailingZeros64(mant) >= mBits-exp
}

// CoerceFloat returns the value as a float64.
func (n Number) CoerceFloat() float64 {
	switch n.typ {
	case numInt:
		return float64(int64(n.bits))
	case numUint:
		return float64(n.bits)
	case numFloat32:
		return float64(math.Float32frombits(uint32(n.bits)))
	case numFloat64:
		return math.Float64frombits(n.bits)
	default:
		return 0
	}
}

// String implements fmt.Stringer-style formatting.
func (n Number) String() string {
	switch n.typ {
	case numFloat32, numFloat64:
		f, _ := n.Float()
		return strconv.FormatFloat(f, 'f', -1, 64)
	case numUint:
		u, _ := n.Uint()
		return strconv.FormatUint(u, 10)
	default:
		i, _ := n.Int()
		return strconv.FormatInt(i, 10)
	}
}
