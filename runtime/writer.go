package wire

// Writer provides a minimal wire writer backed by ByteBuffer.
// It is intended for use by generated MarshalWire implementations and by
// record stream producers.
type Writer struct {
	bb *ByteBuffer
}

// NewWriter constructs a Writer that appends to the provided ByteBuffer.
func NewWriter(bb *ByteBuffer) *Writer { return &Writer{bb: bb} }

// Bytes returns the underlying encoded bytes.
func (w *Writer) Bytes() []byte { return w.bb.Bytes() }

// WriteI8 writes an int8 value.
func (w *Writer) WriteI8(v int8) error {
	w.bb.AppendI8(v)
	return nil
}

// WriteI16 writes an int16 value.
func (w *Writer) WriteI16(v int16) error {
	w.bb.AppendI16(v)
	return nil
}

// WriteI32 writes an int32 value.
func (w *Writer) WriteI32(v int32) error {
	w.bb.AppendI32(v)
	return nil
}

// WriteI64 writes an int64 value.
func (w *Writer) WriteI64(v int64) error {
	w.bb.AppendI64(v)
	return nil
}

// WriteU8 writes a uint8 value.
func (w *Writer) WriteU8(v uint8) error {
	w.bb.AppendU8(v)
	return nil
}

// WriteU16 writes a uint16 value.
func (w *Writer) WriteU16(v uint16) error {
	w.bb.AppendU16(v)
	return nil
}

// WriteU32 writes a uint32 value.
func (w *Writer) WriteU32(v uint32) error {
	w.bb.AppendU32(v)
	return nil
}

// WriteU64 writes a uint64 value.
func (w *Writer) WriteU64(v uint64) error {
	w.bb.AppendU64(v)
	return nil
}

// WriteF32 writes a float32 value.
func (w *Writer) WriteF32(v float32) error {
	w.bb.AppendF32(v)
	return nil
}

// WriteF64 writes a float64 value.
func (w *Writer) WriteF64(v float64) error {
	w.bb.AppendF64(v)
	return nil
}

// WriteValue writes a value instance. It fails with ErrNotInitialized
// when the instance holds no scalar.
func (w *Writer) WriteValue(v Value) error {
	o, err := v.MarshalWire(w.bb.b)
	if err != nil {
		return err
	}
	w.bb.b = o
	return nil
}
