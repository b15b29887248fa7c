package wire

import (
	"encoding/binary"
	"math"
)

var be = binary.BigEndian

// ReadI8Bytes reads an int8 and returns the remaining bytes.
func ReadI8Bytes(b []byte) (int8, []byte, error) {
	if len(b) < I8Size {
		return 0, b, ErrShortBytes
	}
	return int8(b[0]), b[I8Size:], nil
}

// ReadI16Bytes reads a big-endian int16 and returns the remaining bytes.
func ReadI16Bytes(b []byte) (int16, []byte, error) {
	if len(b) < I16Size {
		return 0, b, ErrShortBytes
	}
	return int16(be.Uint16(b)), b[I16Size:], nil
}

// ReadI32Bytes reads a big-endian int32 and returns the remaining bytes.
func ReadI32Bytes(b []byte) (int32, []byte, error) {
	if len(b) < I32Size {
		return 0, b, ErrShortBytes
	}
	return int32(be.Uint32(b)), b[I32Size:], nil
}

// ReadI64Bytes reads a big-endian int64 and returns the remaining bytes.
func ReadI64Bytes(b []byte) (int64, []byte, error) {
	if len(b) < I64Size {
		return 0, b, ErrShortBytes
	}
	return int64(be.Uint64(b)), b[I64Size:], nil
}

// ReadU8Bytes reads a uint8 and returns the remaining bytes.
func ReadU8Bytes(b []byte) (uint8, []byte, error) {
	if len(b) < U8Size {
		return 0, b, ErrShortBytes
	}
	return b[0], b[U8Size:], nil
}

// ReadU16Bytes reads a big-endian uint16 and returns the remaining bytes.
func ReadU16Bytes(b []byte) (uint16, []byte, error) {
	if len(b) < U16Size {
		return 0, b, ErrShortBytes
	}
	return be.Uint16(b), b[U16Size:], nil
}

// ReadU32Bytes reads a big-endian uint32 and returns the remaining bytes.
func ReadU32Bytes(b []byte) (uint32, []byte, error) {
	if len(b) < U32Size {
		return 0, b, ErrShortBytes
	}
	return be.Uint32(b), b[U32Size:], nil
}

// ReadU64Bytes reads a big-endian uint64 and returns the remaining bytes.
func ReadU64Bytes(b []byte) (uint64, []byte, error) {
	if len(b) < U64Size {
		return 0, b, ErrShortBytes
	}
	return be.Uint64(b), b[U64Size:], nil
}

// ReadF32Bytes reads a big-endian IEEE-754 binary32 and returns the
// remaining bytes.
func ReadF32Bytes(b []byte) (float32, []byte, error) {
	if len(b) < F32Size {
		return 0, b, ErrShortBytes
	}
	return math.Float32frombits(be.Uint32(b)), b[F32Size:], nil
}

// ReadF64Bytes reads a big-endian IEEE-754 binary64 and returns the
// remaining bytes.
func ReadF64Bytes(b []byte) (float64, []byte, error) {
	if len(b) < F64Size {
		return 0, b, ErrShortBytes
	}
	return math.Float64frombits(be.Uint64(b)), b[F64Size:], nil
}

// ReadValueBytes reads one value of the given tag and returns it together
// with the remaining bytes. It panics if the tag is not a member of the
// family.
func ReadValueBytes(t Tag, b []byte) (Value, []byte, error) {
	v := NewValue(t)
	o, err := v.UnmarshalWire(b)
	if err != nil {
		return nil, b, err
	}
	return v, o, nil
}

// ReadNumberBytes reads one value of the given tag as a dynamic Number
// and returns the remaining bytes. It panics if the tag is not a member
// of the family.
func ReadNumberBytes(t Tag, b []byte) (Number, []byte, error) {
	v, o, err := ReadValueBytes(t, b)
	if err != nil {
		return Number{}, b, err
	}
	n, _ := v.Number()
	return n, o, nil
}
