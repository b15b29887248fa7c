package wire

import "strconv"

// DiagBytes renders the next channel record in human-readable notation,
// "name:TAG = value", and returns the remaining bytes.
func DiagBytes(d *Dictionary, b []byte) (string, []byte, error) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	rest, err := diagOneBuf(bb, d, b)
	if err != nil {
		return "", b, err
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return string(out), rest, nil
}

func diagOneBuf(buf *ByteBuffer, d *Dictionary, b []byte) ([]byte, error) {
	r, o, err := ReadReadingBytes(d, b)
	if err != nil {
		return b, err
	}
	ch, _ := d.Lookup(r.ID)
	buf.WriteString(ch.Name)
	buf.WriteByte(':')
	buf.WriteString(ch.Type.String())
	buf.WriteString(" = ")
	buf.WriteString(r.Value.String())
	return o, nil
}

// DiagStream renders every record in b, one per line. Rendering stops at
// the first malformed record and returns what was rendered so far along
// with the error.
func DiagStream(d *Dictionary, b []byte) (string, error) {
	bb := GetMinSize(len(b))
	defer PutByteBuffer(bb)
	line := 0
	for len(b) > 0 {
		if line > 0 {
			bb.WriteByte('\n')
		}
		rest, err := diagOneBuf(bb, d, b)
		if err != nil {
			return string(bb.Bytes()), WrapError(err, "record "+strconv.Itoa(line))
		}
		b = rest
		line++
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return string(out), nil
}
