package wire

import (
	"errors"
	"sort"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// Channel describes one telemetry channel: a numeric id, a display name,
// and the wire tag of the values it carries.
type Channel struct {
	ID   uint32
	Name string
	Type Tag
}

// Dictionary maps channel ids to their definitions. It is populated once
// at construction and read-only thereafter, so concurrent lookups need no
// locking.
type Dictionary struct {
	byID map[uint32]Channel
}

// ErrDuplicateChannel is returned when a dictionary defines the same
// channel id twice.
var ErrDuplicateChannel = errors.New("wire: duplicate channel id in dictionary")

// NewDictionary builds a dictionary from channel definitions. Duplicate
// ids and tags outside the wire family are rejected.
func NewDictionary(chs []Channel) (*Dictionary, error) {
	d := &Dictionary{byID: make(map[uint32]Channel, len(chs))}
	for _, ch := range chs {
		if !ch.Type.Valid() {
			return nil, &UnknownTagError{Name: ch.Type.String()}
		}
		if _, ok := d.byID[ch.ID]; ok {
			return nil, WrapError(ErrDuplicateChannel, ch.Name)
		}
		d.byID[ch.ID] = ch
	}
	return d, nil
}

// Lookup resolves a channel id.
func (d *Dictionary) Lookup(id uint32) (Channel, bool) {
	ch, ok := d.byID[id]
	return ch, ok
}

// Len returns the number of channels defined.
func (d *Dictionary) Len() int { return len(d.byID) }

// Channels returns the definitions sorted by id.
func (d *Dictionary) Channels() []Channel {
	out := make([]Channel, 0, len(d.byID))
	for _, ch := range d.byID {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// channelRec is the on-disk shape of one channel definition. The tag is
// stored by name so dictionary files stay readable in CBOR diagnostic
// tools.
type channelRec struct {
	ID   uint32 `cbor:"1,keyasint"`
	Name string `cbor:"2,keyasint"`
	Type string `cbor:"3,keyasint"`
}

// dictEncMode is the canonical CBOR encoder used for dictionary files,
// built once at init.
var dictEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dictEncMode = em
}

// MarshalBinary encodes the dictionary as a canonical CBOR array of
// channel records sorted by id.
func (d *Dictionary) MarshalBinary() ([]byte, error) {
	chs := d.Channels()
	recs := make([]channelRec, len(chs))
	for i, ch := range chs {
		recs[i] = channelRec{ID: ch.ID, Name: ch.Name, Type: ch.Type.String()}
	}
	return dictEncMode.Marshal(recs)
}

// UnmarshalBinary decodes a CBOR dictionary file. Unknown tag names and
// duplicate ids are rejected.
func (d *Dictionary) UnmarshalBinary(b []byte) error {
	var recs []channelRec
	if err := cbor.Unmarshal(b, &recs); err != nil {
		return err
	}
	chs := make([]Channel, len(recs))
	for i, rec := range recs {
		t, err := ParseTag(rec.Type)
		if err != nil {
			return WrapError(err, rec.Name)
		}
		chs[i] = Channel{ID: rec.ID, Name: rec.Name, Type: t}
	}
	nd, err := NewDictionary(chs)
	if err != nil {
		return err
	}
	*d = *nd
	return nil
}

// Reading is one decoded channel record: the channel id plus the
// validated value that followed it on the wire.
type Reading struct {
	ID    uint32
	Value Value
}

// AppendReading appends one channel record: a U32 channel id followed by
// the value in its own tag's layout. The channel must be defined in the
// dictionary and the value's tag must match the channel's declared type.
func AppendReading(b []byte, d *Dictionary, r Reading) ([]byte, error) {
	ch, ok := d.Lookup(r.ID)
	if !ok {
		return b, UnknownChannelError{ID: r.ID}
	}
	if r.Value.Tag() != ch.Type {
		return b, WrapError(TypeError{Want: ch.Type, Got: r.Value.Tag().String()}, ch.Name)
	}
	o := AppendU32(b, r.ID)
	o, err := AppendValue(o, r.Value)
	if err != nil {
		return b, WrapError(err, ch.Name)
	}
	return o, nil
}

// ReadReadingBytes reads one channel record, resolving the value tag
// through the dictionary, and returns the remaining bytes.
func ReadReadingBytes(d *Dictionary, b []byte) (Reading, []byte, error) {
	id, o, err := ReadU32Bytes(b)
	if err != nil {
		return Reading{}, b, err
	}
	ch, ok := d.Lookup(id)
	if !ok {
		return Reading{}, b, UnknownChannelError{ID: id}
	}
	v, o, err := ReadValueBytes(ch.Type, o)
	if err != nil {
		return Reading{}, b, WrapError(err, ch.Name)
	}
	return Reading{ID: id, Value: v}, o, nil
}

// Encode appends a sequence of channel records.
func (d *Dictionary) Encode(b []byte, rs []Reading) ([]byte, error) {
	var err error
	for i, r := range rs {
		b, err = AppendReading(b, d, r)
		if err != nil {
			return b, WrapError(err, strconv.Itoa(i))
		}
	}
	return b, nil
}

// Decode decodes channel records until the buffer is exhausted. Any
// malformed record is terminal for the whole call; no partial repair is
// attempted.
func (d *Dictionary) Decode(b []byte) ([]Reading, error) {
	var out []Reading
	for len(b) > 0 {
		r, rest, err := ReadReadingBytes(d, b)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
		b = rest
	}
	return out, nil
}
