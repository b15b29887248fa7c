package wire

// Kind classifies a numeric tag by its validation category.
type Kind uint8

// Tag kinds
const (
	KindInvalid Kind = iota

	KindSigned   // two's-complement signed integer
	KindUnsigned // unsigned integer
	KindFloat    // IEEE-754 binary float
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "<invalid>"
	}
}

// Tag is the descriptor of one fixed-width numeric type: a validation kind
// plus a declared bit width. The byte width and wire layout are derived
// from these two fields; nothing is ever parsed back out of a type name.
// The zero Tag is invalid.
type Tag struct {
	Kind Kind
	Bits uint8
}

// The closed family of wire tags. No other combinations are valid.
var (
	I8  = Tag{KindSigned, 8}
	I16 = Tag{KindSigned, 16}
	I32 = Tag{KindSigned, 32}
	I64 = Tag{KindSigned, 64}
	U8  = Tag{KindUnsigned, 8}
	U16 = Tag{KindUnsigned, 16}
	U32 = Tag{KindUnsigned, 32}
	U64 = Tag{KindUnsigned, 64}
	F32 = Tag{KindFloat, 32}
	F64 = Tag{KindFloat, 64}
)

// tags is the registry of all valid tags, populated once and read-only
// thereafter.
var tags = []Tag{I8, I16, I32, I64, U8, U16, U32, U64, F32, F64}

// Tags returns the ten members of the wire type family in declaration
// order. The returned slice must not be modified.
func Tags() []Tag { return tags }

// Valid reports whether t is one of the ten wire tags. Floats only exist
// at 32 and 64 bits.
func (t Tag) Valid() bool {
	switch t.Kind {
	case KindSigned, KindUnsigned:
		return t.Bits == 8 || t.Bits == 16 || t.Bits == 32 || t.Bits == 64
	case KindFloat:
		return t.Bits == 32 || t.Bits == 64
	default:
		return false
	}
}

// mustValid panics on an invalid tag. An invalid tag reaching a width or
// layout query is a programming error, not a data error.
func (t Tag) mustValid() {
	if !t.Valid() {
		panic("wire: invalid tag " + t.String())
	}
}

// ByteWidth returns the number of bytes the tag's values occupy on the
// wire. It panics if the tag is not a member of the family.
func (t Tag) ByteWidth() int {
	t.mustValid()
	return int(t.Bits) / 8
}

// Layout describes how a tag's values are laid out on the wire.
// BigEndian is false only for single-byte widths, where byte order does
// not apply.
type Layout struct {
	Bytes     int
	BigEndian bool
}

// Layout returns the wire layout for the tag. It panics if the tag is not
// a member of the family.
func (t Tag) Layout() Layout {
	w := t.ByteWidth()
	return Layout{Bytes: w, BigEndian: w > 1}
}

// String implements fmt.Stringer
func (t Tag) String() string {
	var prefix string
	switch t.Kind {
	case KindSigned:
		prefix = "I"
	case KindUnsigned:
		prefix = "U"
	case KindFloat:
		prefix = "F"
	default:
		return "<invalid>"
	}
	switch t.Bits {
	case 8:
		return prefix + "8"
	case 16:
		return prefix + "16"
	case 32:
		return prefix + "32"
	case 64:
		return prefix + "64"
	default:
		return "<invalid>"
	}
}

// ParseTag parses a tag name such as "I8" or "F64". It is used when
// loading channel dictionaries and by the wiregen generator; unknown
// names are an error, not a panic, because the input is external.
func ParseTag(s string) (Tag, error) {
	for _, t := range tags {
		if t.String() == s {
			return t, nil
		}
	}
	return Tag{}, &UnknownTagError{Name: s}
}
