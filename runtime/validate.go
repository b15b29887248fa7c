package wire

// ValidateStreamBytes validates that the next channel record in b is
// well-formed against the dictionary and returns the remaining bytes.
// Checks performed:
// - The channel id prefix is present and defined in the dictionary
// - The full byte width of the channel's value type follows
func ValidateStreamBytes(d *Dictionary, b []byte) (rest []byte, err error) {
	id, err := PeekChannel(b)
	if err != nil {
		return b, err
	}
	ch, ok := d.Lookup(id)
	if !ok {
		return b, UnknownChannelError{ID: id}
	}
	n := ChannelIDSize + ch.Type.ByteWidth()
	if len(b) < n {
		return b, ErrShortBytes
	}
	return b[n:], nil
}

// ValidateStream validates that all records in b are well-formed until
// input is exhausted.
func ValidateStream(d *Dictionary, b []byte) error {
	var err error
	for len(b) > 0 {
		b, err = ValidateStreamBytes(d, b)
		if err != nil {
			return err
		}
	}
	return nil
}
