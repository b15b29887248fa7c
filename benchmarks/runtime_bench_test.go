package benchmarks

import (
	"testing"

	cbor "github.com/fxamacker/cbor/v2"
	wire "github.com/helicity-labs/telemwire/runtime"
	msgp "github.com/tinylib/msgp/msgp"
)

// Primitive encode microbenchmarks comparing the fixed-width wire runtime
// against tinylib/msgp's MessagePack runtime and fxamacker's CBOR encoder
// for similar scalar operations. The fixed-width encoding has no prefix
// bytes, so it sets the floor the variable-length formats are measured
// against.

func BenchmarkWire_AppendI64(b *testing.B) {
	var out []byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = wire.AppendI64(out[:0], int64(i))
	}
	_ = out
}

func BenchmarkMsgp_AppendInt64(b *testing.B) {
	var out []byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendInt64(out[:0], int64(i))
	}
	_ = out
}

func BenchmarkCBOR_MarshalInt64(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.Marshal(int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWire_AppendF64(b *testing.B) {
	var out []byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = wire.AppendF64(out[:0], float64(i)*0.5)
	}
	_ = out
}

func BenchmarkMsgp_AppendFloat64(b *testing.B) {
	var out []byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendFloat64(out[:0], float64(i)*0.5)
	}
	_ = out
}

func BenchmarkWire_ReadU32(b *testing.B) {
	buf := wire.AppendU32(nil, 0xdeadbeef)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := wire.ReadU32Bytes(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMsgp_ReadUint32(b *testing.B) {
	buf := msgp.AppendUint32(nil, 0xdeadbeef)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := msgp.ReadUint32Bytes(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWire_StreamDecode(b *testing.B) {
	d, err := wire.NewDictionary([]wire.Channel{
		{ID: 1, Name: "temp01", Type: wire.I16},
		{ID: 2, Name: "volt01", Type: wire.F32},
	})
	if err != nil {
		b.Fatal(err)
	}
	var stream []byte
	for i := 0; i < 64; i++ {
		stream, err = wire.AppendReading(stream, d, wire.Reading{ID: 1, Value: wire.NewI16(int16(i))})
		if err != nil {
			b.Fatal(err)
		}
		stream, err = wire.AppendReading(stream, d, wire.Reading{ID: 2, Value: wire.NewF32(float32(i))})
		if err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(stream); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWire_Validate(b *testing.B) {
	var n wire.Number
	n.AsInt(32767)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := wire.I16.Check(n); err != nil {
			b.Fatal(err)
		}
	}
}
