package tests

import (
	"testing"

	wire "github.com/helicity-labs/telemwire/runtime"
)

// FuzzDecodeStream throws arbitrary bytes at the stream decoder. The
// decoder may reject the input but must never panic, and any accepted
// stream must re-encode to the identical bytes.
func FuzzDecodeStream(f *testing.F) {
	d, err := wire.NewDictionary([]wire.Channel{
		{ID: 1, Name: "temp01", Type: wire.I16},
		{ID: 2, Name: "volt01", Type: wire.F32},
		{ID: 3, Name: "seqno", Type: wire.U64},
	})
	if err != nil {
		f.Fatal(err)
	}

	seed, err := d.Encode(nil, []wire.Reading{
		{ID: 1, Value: wire.NewI16(-1)},
		{ID: 3, Value: wire.NewU64(42)},
	})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00, 0x00, 0x63})

	f.Fuzz(func(t *testing.T, b []byte) {
		rs, err := d.Decode(b)
		if err != nil {
			return
		}
		out, err := d.Encode(nil, rs)
		if err != nil {
			t.Fatalf("re-encode of accepted stream failed: %v", err)
		}
		if string(out) != string(b) {
			t.Fatalf("re-encode mismatch: %x != %x", out, b)
		}
	})
}
