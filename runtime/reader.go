package wire

// Reader provides a minimal slice-based wire reader. It is intended for
// use by generated UnmarshalWire implementations and record stream
// consumers, and operates on an in-memory buffer.
type Reader struct {
	buf        []byte
	maxRecords int
	records    int
}

// NewReaderBytes constructs a Reader over the provided buffer.
func NewReaderBytes(b []byte) *Reader { return &Reader{buf: b} }

// SetMaxRecords configures an upper bound on the number of records
// decoded through ReadRecord. A value of zero disables the limit. When
// exceeded, ErrLimitExceeded is returned.
func (r *Reader) SetMaxRecords(max int) { r.maxRecords = max }

// Remaining returns the unread portion of the underlying buffer.
func (r *Reader) Remaining() []byte { return r.buf }

// ReadI8 reads an int8 and advances the buffer.
func (r *Reader) ReadI8() (int8, error) {
	v, rest, err := ReadI8Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadI16 reads an int16 and advances the buffer.
func (r *Reader) ReadI16() (int16, error) {
	v, rest, err := ReadI16Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadI32 reads an int32 and advances the buffer.
func (r *Reader) ReadI32() (int32, error) {
	v, rest, err := ReadI32Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadI64 reads an int64 and advances the buffer.
func (r *Reader) ReadI64() (int64, error) {
	v, rest, err := ReadI64Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadU8 reads a uint8 and advances the buffer.
func (r *Reader) ReadU8() (uint8, error) {
	v, rest, err := ReadU8Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadU16 reads a uint16 and advances the buffer.
func (r *Reader) ReadU16() (uint16, error) {
	v, rest, err := ReadU16Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadU32 reads a uint32 and advances the buffer.
func (r *Reader) ReadU32() (uint32, error) {
	v, rest, err := ReadU32Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadU64 reads a uint64 and advances the buffer.
func (r *Reader) ReadU64() (uint64, error) {
	v, rest, err := ReadU64Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadF32 reads a float32 and advances the buffer.
func (r *Reader) ReadF32() (float32, error) {
	v, rest, err := ReadF32Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadF64 reads a float64 and advances the buffer.
func (r *Reader) ReadF64() (float64, error) {
	v, rest, err := ReadF64Bytes(r.buf)
	if err != nil {
		return 0, err
	}
	r.buf = rest
	return v, nil
}

// ReadValue reads one value of the given tag and advances the buffer. It
// panics if the tag is not a member of the family.
func (r *Reader) ReadValue(t Tag) (Value, error) {
	v, rest, err := ReadValueBytes(t, r.buf)
	if err != nil {
		return nil, err
	}
	r.buf = rest
	return v, nil
}

// ReadRecord reads one channel record using the dictionary to resolve the
// value tag behind the channel id prefix. The record limit, if set,
// applies here.
func (r *Reader) ReadRecord(d *Dictionary) (Reading, error) {
	if r.maxRecords > 0 && r.records >= r.maxRecords {
		return Reading{}, ErrLimitExceeded
	}
	rec, rest, err := ReadReadingBytes(d, r.buf)
	if err != nil {
		return Reading{}, err
	}
	r.buf = rest
	r.records++
	return rec, nil
}
