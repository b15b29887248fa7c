package wire

// Require ensures that b has capacity for at least n additional bytes
// without reallocation. It returns a slice that shares the original
// contents and has sufficient capacity for appending n bytes.
func Require(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}

// PeekChannel returns the channel id prefixing the next record without
// consuming it.
func PeekChannel(b []byte) (uint32, error) {
	if len(b) < ChannelIDSize {
		return 0, ErrShortBytes
	}
	return be.Uint32(b), nil
}
