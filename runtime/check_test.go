package wire

import (
	"math"
	"testing"
)

func TestSignedBounds(t *testing.T) {
	cases := []struct {
		bits uint8
		min  int64
		max  int64
	}{
		{8, -128, 127},
		{16, -32768, 32767},
		{32, -2147483648, 2147483647},
		{64, math.MinInt64, math.MaxInt64},
	}
	for _, c := range cases {
		min, max := signedBounds(c.bits)
		if min != c.min || max != c.max {
			t.Errorf("signedBounds(%d) = [%d, %d], want [%d, %d]", c.bits, min, max, c.min, c.max)
		}
	}
}

func TestUnsignedMax(t *testing.T) {
	cases := []struct {
		bits uint8
		max  uint64
	}{
		{8, 255},
		{16, 65535},
		{32, 4294967295},
		{64, math.MaxUint64},
	}
	for _, c := range cases {
		if got := unsignedMax(c.bits); got != c.max {
			t.Errorf("unsignedMax(%d) = %d, want %d", c.bits, got, c.max)
		}
	}
}

func TestInvalidTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero tag")
		}
	}()
	var zero Tag
	zero.ByteWidth()
}

func TestTagStringAndParse(t *testing.T) {
	for _, tag := range Tags() {
		parsed, err := ParseTag(tag.String())
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", tag.String(), err)
		}
		if parsed != tag {
			t.Errorf("ParseTag(%q) = %v, want %v", tag.String(), parsed, tag)
		}
	}
	if _, err := ParseTag("F16"); err == nil {
		t.Error("expected error for F16: floats only exist at 32 and 64 bits")
	}
	if _, err := ParseTag(""); err == nil {
		t.Error("expected error for empty tag name")
	}
}
