package wire

// Encoded sizes for the wire type family. Every member is fixed width, so
// these are exact, not worst-case: bit width divided by eight.
const (
	I8Size  = 1
	I16Size = 2
	I32Size = 4
	I64Size = 8
	U8Size  = 1
	U16Size = 2
	U32Size = 4
	U64Size = 8
	F32Size = 4
	F64Size = 8

	// ChannelIDSize is the width of the channel id prefixing each record
	// in a telemetry stream.
	ChannelIDSize = U32Size
)

// SizeOf returns the encoded size in bytes for the tag's values. It is
// equivalent to Tag.ByteWidth and panics on a tag outside the family.
func SizeOf(t Tag) int { return t.ByteWidth() }
