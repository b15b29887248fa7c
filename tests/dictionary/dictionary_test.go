package tests

import (
	"errors"
	"strings"
	"testing"

	cbor "github.com/fxamacker/cbor/v2"
	wire "github.com/helicity-labs/telemwire/runtime"
)

func testDict(t *testing.T) *wire.Dictionary {
	t.Helper()
	d, err := wire.NewDictionary([]wire.Channel{
		{ID: 1, Name: "temp01", Type: wire.I16},
		{ID: 2, Name: "volt01", Type: wire.F32},
		{ID: 3, Name: "seqno", Type: wire.U64},
		{ID: 4, Name: "mode", Type: wire.U8},
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDictionaryConstruction(t *testing.T) {
	d := testDict(t)
	if d.Len() != 4 {
		t.Fatalf("Len = %d, want 4", d.Len())
	}
	ch, ok := d.Lookup(2)
	if !ok || ch.Name != "volt01" || ch.Type != wire.F32 {
		t.Fatalf("Lookup(2) = %+v, %v", ch, ok)
	}
	if _, ok := d.Lookup(99); ok {
		t.Fatal("Lookup(99) resolved an undefined channel")
	}

	// Duplicate ids are rejected.
	_, err := wire.NewDictionary([]wire.Channel{
		{ID: 1, Name: "a", Type: wire.I8},
		{ID: 1, Name: "b", Type: wire.I8},
	})
	if !errors.Is(err, wire.ErrDuplicateChannel) {
		t.Fatalf("want ErrDuplicateChannel, got %v", err)
	}

	// Tags outside the family are rejected.
	_, err = wire.NewDictionary([]wire.Channel{
		{ID: 1, Name: "bad", Type: wire.Tag{Kind: wire.KindFloat, Bits: 16}},
	})
	var ute *wire.UnknownTagError
	if !errors.As(err, &ute) {
		t.Fatalf("want UnknownTagError for F16 channel, got %v", err)
	}
}

// TestDictionaryFileRoundTrip writes the dictionary to its CBOR file form
// and loads it back.
func TestDictionaryFileRoundTrip(t *testing.T) {
	d := testDict(t)
	b, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var got wire.Dictionary
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	if got.Len() != d.Len() {
		t.Fatalf("loaded %d channels, want %d", got.Len(), d.Len())
	}
	for i, ch := range d.Channels() {
		if got.Channels()[i] != ch {
			t.Errorf("channel %d: got %+v, want %+v", i, got.Channels()[i], ch)
		}
	}
}

// TestDictionaryFileOracle cross-checks the file format against the
// fxamacker decoder directly: the file must be a CBOR array of integer-
// keyed records with the tag stored by name.
func TestDictionaryFileOracle(t *testing.T) {
	d := testDict(t)
	b, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var recs []struct {
		ID   uint32 `cbor:"1,keyasint"`
		Name string `cbor:"2,keyasint"`
		Type string `cbor:"3,keyasint"`
	}
	if err := cbor.Unmarshal(b, &recs); err != nil {
		t.Fatalf("independent decode: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("independent decode found %d records", len(recs))
	}
	// Records are sorted by id.
	if recs[0].ID != 1 || recs[0].Name != "temp01" || recs[0].Type != "I16" {
		t.Errorf("first record = %+v", recs[0])
	}
	if recs[1].Type != "F32" {
		t.Errorf("second record type = %q, want F32", recs[1].Type)
	}
}

// TestDictionaryRejectsUnknownTagName verifies that a file referencing a
// tag outside the family fails to load.
func TestDictionaryRejectsUnknownTagName(t *testing.T) {
	raw, err := cbor.Marshal([]struct {
		ID   uint32 `cbor:"1,keyasint"`
		Name string `cbor:"2,keyasint"`
		Type string `cbor:"3,keyasint"`
	}{{ID: 7, Name: "ghost", Type: "I128"}})
	if err != nil {
		t.Fatal(err)
	}
	var d wire.Dictionary
	err = d.UnmarshalBinary(raw)
	var ute *wire.UnknownTagError
	if !errors.As(err, &ute) {
		t.Fatalf("want UnknownTagError, got %v", err)
	}
	if ute.Name != "I128" {
		t.Errorf("error names %q, want I128", ute.Name)
	}
}

// TestStreamRoundTrip encodes a record stream and decodes it back.
func TestStreamRoundTrip(t *testing.T) {
	d := testDict(t)
	in := []wire.Reading{
		{ID: 1, Value: wire.NewI16(-42)},
		{ID: 2, Value: wire.NewF32(3.25)},
		{ID: 3, Value: wire.NewU64(1 << 40)},
		{ID: 4, Value: wire.NewU8(2)},
	}
	b, err := d.Encode(nil, in)
	if err != nil {
		t.Fatal(err)
	}
	// 4 id prefixes plus the value widths.
	wantLen := 4*wire.ChannelIDSize + wire.I16Size + wire.F32Size + wire.U64Size + wire.U8Size
	if len(b) != wantLen {
		t.Fatalf("stream is %d bytes, want %d", len(b), wantLen)
	}
	if err := wire.ValidateStream(d, b); err != nil {
		t.Fatalf("ValidateStream: %v", err)
	}

	out, err := d.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("decoded %d records, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Errorf("record %d: id %d, want %d", i, out[i].ID, in[i].ID)
		}
		if out[i].Value.String() != in[i].Value.String() {
			t.Errorf("record %d: value %s, want %s", i, out[i].Value.String(), in[i].Value.String())
		}
	}
}

// TestStreamErrors covers the terminal error cases: unknown channel,
// truncated value, and a tag mismatch between reading and channel.
func TestStreamErrors(t *testing.T) {
	d := testDict(t)

	// Unknown channel id on encode and decode.
	if _, err := wire.AppendReading(nil, d, wire.Reading{ID: 99, Value: wire.NewI16(1)}); err == nil {
		t.Error("encoded a reading for an undefined channel")
	}
	b := wire.AppendU32(nil, 99)
	b = wire.AppendI16(b, 1)
	var uce wire.UnknownChannelError
	if _, err := d.Decode(b); !errors.As(err, &uce) {
		t.Errorf("want UnknownChannelError, got %v", err)
	}

	// Value tag must match the channel's declared type.
	_, err := wire.AppendReading(nil, d, wire.Reading{ID: 1, Value: wire.NewF64(1)})
	if err == nil {
		t.Error("encoded an F64 value on an I16 channel")
	}

	// Truncated value after a valid id prefix.
	trunc := wire.AppendU32(nil, 3) // seqno wants 8 bytes
	trunc = append(trunc, 0x01)
	if _, err := d.Decode(trunc); !errors.Is(wire.Cause(err), wire.ErrShortBytes) {
		t.Errorf("want ErrShortBytes cause, got %v", err)
	}
	if err := wire.ValidateStream(d, trunc); !errors.Is(err, wire.ErrShortBytes) {
		t.Errorf("ValidateStream: want ErrShortBytes, got %v", err)
	}
}

// TestPeekChannel looks at an id prefix without consuming it.
func TestPeekChannel(t *testing.T) {
	d := testDict(t)
	b, err := wire.AppendReading(nil, d, wire.Reading{ID: 3, Value: wire.NewU64(9)})
	if err != nil {
		t.Fatal(err)
	}
	id, err := wire.PeekChannel(b)
	if err != nil || id != 3 {
		t.Fatalf("PeekChannel = %d, %v", id, err)
	}
	// Peeking does not advance: the full record must still decode.
	if _, _, err := wire.ReadReadingBytes(d, b); err != nil {
		t.Fatalf("record no longer decodes after peek: %v", err)
	}
	if _, err := wire.PeekChannel(b[:wire.ChannelIDSize-1]); !errors.Is(err, wire.ErrShortBytes) {
		t.Errorf("short prefix: want ErrShortBytes, got %v", err)
	}
}

// TestReaderRecordLimit bounds stream decode through the Reader.
func TestReaderRecordLimit(t *testing.T) {
	d := testDict(t)
	var b []byte
	var err error
	for i := 0; i < 3; i++ {
		b, err = wire.AppendReading(b, d, wire.Reading{ID: 4, Value: wire.NewU8(uint8(i))})
		if err != nil {
			t.Fatal(err)
		}
	}
	r := wire.NewReaderBytes(b)
	r.SetMaxRecords(2)
	if _, err := r.ReadRecord(d); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadRecord(d); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadRecord(d); !errors.Is(err, wire.ErrLimitExceeded) {
		t.Fatalf("want ErrLimitExceeded, got %v", err)
	}
}

// TestDiag renders a stream in the human-readable notation.
func TestDiag(t *testing.T) {
	d := testDict(t)
	b, err := d.Encode(nil, []wire.Reading{
		{ID: 1, Value: wire.NewI16(-42)},
		{ID: 4, Value: wire.NewU8(7)},
	})
	if err != nil {
		t.Fatal(err)
	}

	line, rest, err := wire.DiagBytes(d, b)
	if err != nil {
		t.Fatal(err)
	}
	if line != "temp01:I16 = -42" {
		t.Errorf("DiagBytes = %q", line)
	}
	if len(rest) == 0 {
		t.Error("DiagBytes consumed the whole stream")
	}

	out, err := wire.DiagStream(d, b)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || lines[1] != "mode:U8 = 7" {
		t.Errorf("DiagStream = %q", out)
	}
}
