package wire

import "strconv"

// Value is the interface shared by the ten concrete wire types. A Value
// holds at most one validated scalar; it is immutable once set. Marshaling
// an instance that has no scalar yet fails with ErrNotInitialized, and
// unmarshaling is the only operation that stores into an empty instance.
type Value interface {
	WireMarshaler
	WireUnmarshaler

	// Tag returns the descriptor identifying the concrete type.
	Tag() Tag

	// ByteWidth returns the encoded width in bytes, derived from the tag.
	ByteWidth() int

	// Number returns the held scalar as a dynamic candidate. The second
	// result is false when no scalar has been stored yet.
	Number() (Number, bool)

	// String renders the held scalar, or "<unset>".
	String() string
}

// NewValue returns an empty value instance for the tag, ready to be
// unmarshaled into. It panics if the tag is not a member of the family.
func NewValue(t Tag) Value {
	t.mustValid()
	switch t {
	case I8:
		return new(I8Value)
	case I16:
		return new(I16Value)
	case I32:
		return new(I32Value)
	case I64:
		return new(I64Value)
	case U8:
		return new(U8Value)
	case U16:
		return new(U16Value)
	case U32:
		return new(U32Value)
	case U64:
		return new(U64Value)
	case F32:
		return new(F32Value)
	default:
		return new(F64Value)
	}
}

// Interface compliance for all ten members.
var (
	_ Value = (*I8Value)(nil)
	_ Value = (*I16Value)(nil)
	_ Value = (*I32Value)(nil)
	_ Value = (*I64Value)(nil)
	_ Value = (*U8Value)(nil)
	_ Value = (*U16Value)(nil)
	_ Value = (*U32Value)(nil)
	_ Value = (*U64Value)(nil)
	_ Value = (*F32Value)(nil)
	_ Value = (*F64Value)(nil)
)

// I8Value is a single-byte signed integer value.
type I8Value struct {
	v   int8
	set bool
}

// NewI8 returns an I8Value holding v. The static type is the mismatch
// check; an int8 cannot be out of range for I8.
func NewI8(v int8) *I8Value { return &I8Value{v: v, set: true} }

func (x *I8Value) Tag() Tag       { return I8 }
func (x *I8Value) ByteWidth() int { return I8.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *I8Value) Get() (int8, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *I8Value) Number() (Number, bool) {
	var n Number
	n.AsInt(int64(x.v))
	return n, x.set
}

func (x *I8Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendI8(b, x.v), nil
}

func (x *I8Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadI8Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *I8Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatInt(int64(x.v), 10)
}

// I16Value is a double-byte signed integer value, big-endian on the wire.
type I16Value struct {
	v   int16
	set bool
}

// NewI16 returns an I16Value holding v.
func NewI16(v int16) *I16Value { return &I16Value{v: v, set: true} }

func (x *I16Value) Tag() Tag       { return I16 }
func (x *I16Value) ByteWidth() int { return I16.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *I16Value) Get() (int16, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *I16Value) Number() (Number, bool) {
	var n Number
	n.AsInt(int64(x.v))
	return n, x.set
}

func (x *I16Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendI16(b, x.v), nil
}

func (x *I16Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadI16Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *I16Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatInt(int64(x.v), 10)
}

// I32Value is a four-byte signed integer value, big-endian on the wire.
type I32Value struct {
	v   int32
	set bool
}

// NewI32 returns an I32Value holding v.
func NewI32(v int32) *I32Value { return &I32Value{v: v, set: true} }

func (x *I32Value) Tag() Tag       { return I32 }
func (x *I32Value) ByteWidth() int { return I32.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *I32Value) Get() (int32, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *I32Value) Number() (Number, bool) {
	var n Number
	n.AsInt(int64(x.v))
	return n, x.set
}

func (x *I32Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendI32(b, x.v), nil
}

func (x *I32Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadI32Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *I32Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatInt(int64(x.v), 10)
}

// I64Value is an eight-byte signed integer value, big-endian on the wire.
type I64Value struct {
	v   int64
	set bool
}

// NewI64 returns an I64Value holding v.
func NewI64(v int64) *I64Value { return &I64Value{v: v, set: true} }

func (x *I64Value) Tag() Tag       { return I64 }
func (x *I64Value) ByteWidth() int { return I64.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *I64Value) Get() (int64, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *I64Value) Number() (Number, bool) {
	var n Number
	n.AsInt(x.v)
	return n, x.set
}

func (x *I64Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendI64(b, x.v), nil
}

func (x *I64Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadI64Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *I64Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatInt(x.v, 10)
}

// U8Value is a single-byte unsigned integer value.
type U8Value struct {
	v   uint8
	set bool
}

// NewU8 returns a U8Value holding v.
func NewU8(v uint8) *U8Value { return &U8Value{v: v, set: true} }

func (x *U8Value) Tag() Tag       { return U8 }
func (x *U8Value) ByteWidth() int { return U8.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *U8Value) Get() (uint8, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *U8Value) Number() (Number, bool) {
	var n Number
	n.AsUint(uint64(x.v))
	return n, x.set
}

func (x *U8Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendU8(b, x.v), nil
}

func (x *U8Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadU8Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *U8Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatUint(uint64(x.v), 10)
}

// U16Value is a double-byte unsigned integer value, big-endian on the wire.
type U16Value struct {
	v   uint16
	set bool
}

// NewU16 returns a U16Value holding v.
func NewU16(v uint16) *U16Value { return &U16Value{v: v, set: true} }

func (x *U16Value) Tag() Tag       { return U16 }
func (x *U16Value) ByteWidth() int { return U16.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *U16Value) Get() (uint16, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *U16Value) Number() (Number, bool) {
	var n Number
	n.AsUint(uint64(x.v))
	return n, x.set
}

func (x *U16Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendU16(b, x.v), nil
}

func (x *U16Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadU16Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *U16Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatUint(uint64(x.v), 10)
}

// U32Value is a four-byte unsigned integer value, big-endian on the wire.
type U32Value struct {
	v   uint32
	set bool
}

// NewU32 returns a U32Value holding v.
func NewU32(v uint32) *U32Value { return &U32Value{v: v, set: true} }

func (x *U32Value) Tag() Tag       { return U32 }
func (x *U32Value) ByteWidth() int { return U32.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *U32Value) Get() (uint32, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *U32Value) Number() (Number, bool) {
	var n Number
	n.AsUint(uint64(x.v))
	return n, x.set
}

func (x *U32Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendU32(b, x.v), nil
}

func (x *U32Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadU32Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *U32Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatUint(uint64(x.v), 10)
}

// U64Value is an eight-byte unsigned integer value, big-endian on the wire.
type U64Value struct {
	v   uint64
	set bool
}

// NewU64 returns a U64Value holding v.
func NewU64(v uint64) *U64Value { return &U64Value{v: v, set: true} }

func (x *U64Value) Tag() Tag       { return U64 }
func (x *U64Value) ByteWidth() int { return U64.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *U64Value) Get() (uint64, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *U64Value) Number() (Number, bool) {
	var n Number
	n.AsUint(x.v)
	return n, x.set
}

func (x *U64Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendU64(b, x.v), nil
}

func (x *U64Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadU64Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *U64Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatUint(x.v, 10)
}

// F32Value is a four-byte IEEE-754 binary32 value, big-endian on the wire.
type F32Value struct {
	v   float32
	set bool
}

// NewF32 returns an F32Value holding v. Any float32, including NaN and
// the infinities, is accepted.
func NewF32(v float32) *F32Value { return &F32Value{v: v, set: true} }

func (x *F32Value) Tag() Tag       { return F32 }
func (x *F32Value) ByteWidth() int { return F32.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *F32Value) Get() (float32, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *F32Value) Number() (Number, bool) {
	var n Number
	n.AsFloat32(x.v)
	return n, x.set
}

func (x *F32Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendF32(b, x.v), nil
}

func (x *F32Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadF32Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *F32Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatFloat(float64(x.v), 'g', -1, 32)
}

// F64Value is an eight-byte IEEE-754 binary64 value, big-endian on the
// wire. It validates exactly like F32Value: float kind membership only,
// no range restriction.
type F64Value struct {
	v   float64
	set bool
}

// NewF64 returns an F64Value holding v. Any float64, including NaN and
// the infinities, is accepted.
func NewF64(v float64) *F64Value { return &F64Value{v: v, set: true} }

func (x *F64Value) Tag() Tag       { return F64 }
func (x *F64Value) ByteWidth() int { return F64.ByteWidth() }

// Get returns the held scalar, or ErrNotInitialized.
func (x *F64Value) Get() (float64, error) {
	if !x.set {
		return 0, ErrNotInitialized
	}
	return x.v, nil
}

func (x *F64Value) Number() (Number, bool) {
	var n Number
	n.AsFloat64(x.v)
	return n, x.set
}

func (x *F64Value) MarshalWire(b []byte) ([]byte, error) {
	if !x.set {
		return b, ErrNotInitialized
	}
	return AppendF64(b, x.v), nil
}

func (x *F64Value) UnmarshalWire(b []byte) ([]byte, error) {
	v, o, err := ReadF64Bytes(b)
	if err != nil {
		return b, err
	}
	x.v = v
	x.set = true
	return o, nil
}

func (x *F64Value) String() string {
	if !x.set {
		return "<unset>"
	}
	return strconv.FormatFloat(x.v, 'g', -1, 64)
}
