package wire

import (
	"encoding/binary"
	"math"
)

// ensure 'sz' extra bytes in 'b' btw len(b) and cap(b)
func ensure(b []byte, sz int) ([]byte, int) {
	l := len(b)
	c := cap(b)
	if c-l < sz {
		o := make([]byte, (2*c)+sz) // exponential growth
		n := copy(o, b)
		return o[:n+sz], n
	}
	return b[:l+sz], l
}

// AppendI8 appends an int8 as one byte.
func AppendI8(b []byte, v int8) []byte {
	return append(b, byte(v))
}

// AppendI16 appends an int16 big-endian.
func AppendI16(b []byte, v int16) []byte {
	o, n := ensure(b, I16Size)
	binary.BigEndian.PutUint16(o[n:], uint16(v))
	return o
}

// AppendI32 appends an int32 big-endian.
func AppendI32(b []byte, v int32) []byte {
	o, n := ensure(b, I32Size)
	binary.BigEndian.PutUint32(o[n:], uint32(v))
	return o
}

// AppendI64 appends an int64 big-endian.
func AppendI64(b []byte, v int64) []byte {
	o, n := ensure(b, I64Size)
	binary.BigEndian.PutUint64(o[n:], uint64(v))
	return o
}

// AppendU8 appends a uint8 as one byte.
func AppendU8(b []byte, v uint8) []byte {
	return append(b, v)
}

// AppendU16 appends a uint16 big-endian.
func AppendU16(b []byte, v uint16) []byte {
	o, n := ensure(b, U16Size)
	binary.BigEndian.PutUint16(o[n:], v)
	return o
}

// AppendU32 appends a uint32 big-endian.
func AppendU32(b []byte, v uint32) []byte {
	o, n := ensure(b, U32Size)
	binary.BigEndian.PutUint32(o[n:], v)
	return o
}

// AppendU64 appends a uint64 big-endian.
func AppendU64(b []byte, v uint64) []byte {
	o, n := ensure(b, U64Size)
	binary.BigEndian.PutUint64(o[n:], v)
	return o
}

// AppendF32 appends a float32 as IEEE-754 binary32, big-endian.
func AppendF32(b []byte, v float32) []byte {
	o, n := ensure(b, F32Size)
	binary.BigEndian.PutUint32(o[n:], math.Float32bits(v))
	return o
}

// AppendF64 appends a float64 as IEEE-754 binary64, big-endian.
func AppendF64(b []byte, v float64) []byte {
	o, n := ensure(b, F64Size)
	binary.BigEndian.PutUint64(o[n:], math.Float64bits(v))
	return o
}

// AppendValue appends a value instance using its own tag's layout.
func AppendValue(b []byte, v Value) ([]byte, error) {
	return v.MarshalWire(b)
}

// AppendNumber validates the candidate against the tag and appends it
// using the tag's layout.
func AppendNumber(b []byte, t Tag, n Number) ([]byte, error) {
	v, err := n.Bind(t)
	if err != nil {
		return b, err
	}
	return v.MarshalWire(b)
}
