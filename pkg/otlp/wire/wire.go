// Package wire implements the protobuf primitives used by the OTLP message
// codecs: tags, varints, zigzag integers, fixed-width values and
// length-delimited runs.
//
// Decoding is done with a [Decoder] cursor which borrows from its input.
// Encoding is append-style: every Append function extends a byte slice and
// returns the result, and never fails.
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrInvalidWireFormat is the error kind for every decoding failure:
// truncated input, malformed varints, length prefixes exceeding the input and
// invalid UTF-8 in text fields.
var ErrInvalidWireFormat = errors.New("invalid wire format")

type (
	// Number is a protobuf field number.
	Number = protowire.Number
	// Type is a protobuf wire type.
	Type = protowire.Type
)

const (
	VarintType  = protowire.VarintType
	Fixed32Type = protowire.Fixed32Type
	Fixed64Type = protowire.Fixed64Type
	BytesType   = protowire.BytesType
)

// Unknown is the field number reported for a field that does not match its
// declaration. No message declares field 0.
const Unknown Number = 0

// packed marks a repeated scalar declaration. It lies outside the range of
// protobuf wire types.
const packed Type = 0x40

// Fields declares the wire type of each field number a message knows about.
type Fields map[Number]Type

// Packed declares a repeated scalar field of type t. It is accepted both packed
// and with one tag per element.
func Packed(t Type) Type { return t | packed }

func (f Fields) accepts(num Number, typ Type) bool {
	want, ok := f[num]
	if !ok {
		return true
	}
	if want&packed != 0 {
		return typ == want&^packed || typ == BytesType
	}
	return typ == want
}

// Message is implemented by every OTLP message type.
type Message interface {
	// MarshalAppend appends the canonical encoding of the message to b. A
	// nil message appends nothing, so a nil element of a repeated field is
	// written as an empty message.
	MarshalAppend(b []byte) []byte

	// Unmarshal decodes b into the message, merging with any fields already
	// set. Strings and bytes in the result alias b.
	Unmarshal(b []byte) error
}

// Marshal returns the canonical encoding of m.
func Marshal(m Message) []byte {
	return m.MarshalAppend(nil)
}

// MarshalDelimited returns the encoding of m prefixed with its varint length.
func MarshalDelimited(m Message) []byte {
	return appendLengthPrefixed(nil, m)
}

// UnmarshalDelimited decodes a varint length-prefixed message from the front
// of b into m and returns the number of bytes consumed.
func UnmarshalDelimited(b []byte, m Message) (int, error) {
	v, n, err := SplitDelimited(b)
	if err != nil {
		return 0, err
	}
	if err := m.Unmarshal(v); err != nil {
		return 0, err
	}
	return n, nil
}

// SplitDelimited returns the varint length-prefixed run at the front of b and
// the number of bytes it occupies including the prefix.
func SplitDelimited(b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, parseError(n)
	}
	return v[:len(v):len(v)], n, nil
}

// Errorf returns an error of kind [ErrInvalidWireFormat] with the given
// message.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWireFormat, fmt.Sprintf(format, args...))
}

// ReadRepeated decodes the current field of d into a new message and appends
// it to dst.
func ReadRepeated[T any, P interface {
	*T
	Message
}](d *Decoder, dst []P) ([]P, error) {
	m := P(new(T))
	if err := d.Message(m); err != nil {
		return dst, err
	}
	return append(dst, m), nil
}

// AppendRepeated appends each message in ms as field num.
func AppendRepeated[P Message](b []byte, num Number, ms []P) []byte {
	for _, m := range ms {
		b = AppendMessage(b, num, m)
	}
	return b
}
