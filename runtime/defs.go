// This package is the support library for typed telemetry values and the
// wiregen code generator.
//
// This package defines the fixed-width numeric value family used on the
// telemetry wire: signed and unsigned integers of 8, 16, 32 and 64 bits and
// IEEE-754 binary32/binary64 floats. Each type carries an explicit
// descriptor (its Tag) from which its byte width and wire layout are
// derived, and validates candidate scalars before accepting them. All
// multi-byte values are laid out big-endian; single-byte values have no
// byte order.
//
// This package defines four "families" of functions:
//   - AppendXxxx() appends a value to a []byte in wire encoding.
//   - ReadXxxxBytes() reads a value from a []byte and returns the remaining bytes.
//   - (*Writer).WriteXxxx() writes a value to the buffered *Writer type.
//   - (*Reader).ReadXxxx() reads a value from a slice-backed *Reader type.
//
// Values that implement the WireMarshaler and WireUnmarshaler interfaces,
// including the generated code emitted by wiregen, compose directly with
// these families.
package wire

// WireMarshaler is the interface implemented by types that know how to
// marshal themselves onto the telemetry wire. MarshalWire appends the
// encoded form to the provided byte slice, returning the extended slice
// and any errors encountered.
type WireMarshaler interface {
	MarshalWire([]byte) ([]byte, error)
}

// WireUnmarshaler is the interface fulfilled by objects that know how to
// unmarshal themselves from the telemetry wire. UnmarshalWire consumes the
// object from binary, returning any leftover bytes and any errors
// encountered.
type WireUnmarshaler interface {
	UnmarshalWire([]byte) ([]byte, error)
}
