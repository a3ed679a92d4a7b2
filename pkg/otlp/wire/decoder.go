package wire

import (
	"fmt"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// A Decoder reads protobuf fields from a byte slice. The zero value is an
// exhausted decoder; use [NewDecoder].
//
// A field whose number is declared in the decoder's [Fields] but which
// arrives with another wire type is reported by [Decoder.Next] as [Unknown].
// The value methods still fail with [ErrInvalidWireFormat] when called on a
// field of the wrong type.
//
// Values returned by [Decoder.Bytes] and [Decoder.Text] alias the input and
// are only valid for as long as the input is.
type Decoder struct {
	buf    []byte
	fields Fields

	// Field currently being decoded, set by Next.
	num Number
	typ Type
}

// NewDecoder returns a Decoder reading the fields of a message from b. fields
// may be nil, in which case wire types are only checked by the value methods.
func NewDecoder(b []byte, fields Fields) Decoder {
	return Decoder{buf: b, fields: fields}
}

// Done reports whether all input has been consumed.
func (d *Decoder) Done() bool { return len(d.buf) == 0 }

// Next reads the next field tag and returns its field number. A declared field
// with an unexpected wire type is returned as [Unknown] so that it is skipped
// and any value already decoded for it is kept.
func (d *Decoder) Next() (Number, error) {
	num, typ, n := protowire.ConsumeTag(d.buf)
	if n < 0 {
		return 0, parseError(n)
	}
	d.buf = d.buf[n:]
	d.num, d.typ = num, typ
	if !d.fields.accepts(num, typ) {
		return Unknown, nil
	}
	return num, nil
}

// Type returns the wire type of the current field.
func (d *Decoder) Type() Type { return d.typ }

// Skip discards the value of the current field.
func (d *Decoder) Skip() error {
	n := protowire.ConsumeFieldValue(d.num, d.typ, d.buf)
	if n < 0 {
		return parseError(n)
	}
	d.buf = d.buf[n:]
	return nil
}

// Varint reads the current field as a base 128 varint.
func (d *Decoder) Varint() (uint64, error) {
	if err := d.expect(VarintType); err != nil {
		return 0, err
	}
	return d.varint()
}

func (d *Decoder) varint() (uint64, error) {
	v, n := protowire.ConsumeVarint(d.buf)
	if n < 0 {
		return 0, parseError(n)
	}
	d.buf = d.buf[n:]
	return v, nil
}

// Bool reads the current field as a varint bool.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Varint()
	return v != 0, err
}

// Int32 reads an int32 or enum field. Values are truncated to 32 bits.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.Varint()
	return int32(v), err
}

// Uint32 reads a uint32 field. Values are truncated to 32 bits.
func (d *Decoder) Uint32() (uint32, error) {
	v, err := d.Varint()
	return uint32(v), err
}

// Int64 reads an int64 field.
func (d *Decoder) Int64() (int64, error) {
	v, err := d.Varint()
	return int64(v), err
}

// Sint32 reads a zigzag encoded sint32 field.
func (d *Decoder) Sint32() (int32, error) {
	v, err := d.Varint()
	return int32(protowire.DecodeZigZag(v & math.MaxUint32)), err
}

// Fixed32 reads a fixed32 field.
func (d *Decoder) Fixed32() (uint32, error) {
	if err := d.expect(Fixed32Type); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeFixed32(d.buf)
	if n < 0 {
		return 0, parseError(n)
	}
	d.buf = d.buf[n:]
	return v, nil
}

// Fixed64 reads a fixed64 field.
func (d *Decoder) Fixed64() (uint64, error) {
	if err := d.expect(Fixed64Type); err != nil {
		return 0, err
	}
	return d.fixed64()
}

func (d *Decoder) fixed64() (uint64, error) {
	v, n := protowire.ConsumeFixed64(d.buf)
	if n < 0 {
		return 0, parseError(n)
	}
	d.buf = d.buf[n:]
	return v, nil
}

// Sfixed64 reads a sfixed64 field.
func (d *Decoder) Sfixed64() (int64, error) {
	v, err := d.Fixed64()
	return int64(v), err
}

// Double reads a double field.
func (d *Decoder) Double() (float64, error) {
	v, err := d.Fixed64()
	return math.Float64frombits(v), err
}

// Bytes reads a length-delimited field. The returned slice aliases the input
// and has its capacity clipped to its length.
func (d *Decoder) Bytes() ([]byte, error) {
	if err := d.expect(BytesType); err != nil {
		return nil, err
	}
	return d.bytes()
}

func (d *Decoder) bytes() ([]byte, error) {
	v, n := protowire.ConsumeBytes(d.buf)
	if n < 0 {
		return nil, parseError(n)
	}
	d.buf = d.buf[n:]
	return v[:len(v):len(v)], nil
}

// Text reads a string field. The returned string shares memory with the
// input, which must not be modified afterwards.
func (d *Decoder) Text() (string, error) {
	b, err := d.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: field %d: invalid UTF-8", ErrInvalidWireFormat, d.num)
	}
	return unsafeString(b), nil
}

// Message decodes the current length-delimited field into m. Fields already
// set on m are merged with the decoded ones.
func (d *Decoder) Message(m Message) error {
	num := d.num
	b, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := m.Unmarshal(b); err != nil {
		return errors.Wrapf(err, "field %d", num)
	}
	return nil
}

// Uint64s appends the current repeated uint64 field to dst. Both packed and
// unpacked encodings are accepted.
func (d *Decoder) Uint64s(dst []uint64) ([]uint64, error) {
	switch d.typ {
	case VarintType:
		v, err := d.varint()
		if err != nil {
			return dst, err
		}
		return append(dst, v), nil
	case BytesType:
		b, err := d.bytes()
		if err != nil {
			return dst, err
		}
		for len(b) > 0 {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return dst, parseError(n)
			}
			dst = append(dst, v)
			b = b[n:]
		}
		return dst, nil
	}
	return dst, d.wrongType(VarintType)
}

// Fixed64s appends the current repeated fixed64 field to dst. Both packed and
// unpacked encodings are accepted.
func (d *Decoder) Fixed64s(dst []uint64) ([]uint64, error) {
	switch d.typ {
	case Fixed64Type:
		v, err := d.fixed64()
		if err != nil {
			return dst, err
		}
		return append(dst, v), nil
	case BytesType:
		b, err := d.bytes()
		if err != nil {
			return dst, err
		}
		if len(b)%8 != 0 {
			return dst, fmt.Errorf("%w: field %d: packed fixed64 length %d", ErrInvalidWireFormat, d.num, len(b))
		}
		for ; len(b) > 0; b = b[8:] {
			v, _ := protowire.ConsumeFixed64(b)
			dst = append(dst, v)
		}
		return dst, nil
	}
	return dst, d.wrongType(Fixed64Type)
}

// Doubles appends the current repeated double field to dst. Both packed and
// unpacked encodings are accepted.
func (d *Decoder) Doubles(dst []float64) ([]float64, error) {
	// Doubles share the fixed64 layout.
	bits, err := d.Fixed64s(nil)
	for _, v := range bits {
		dst = append(dst, math.Float64frombits(v))
	}
	return dst, err
}

func (d *Decoder) expect(typ Type) error {
	if d.typ != typ {
		return d.wrongType(typ)
	}
	return nil
}

func (d *Decoder) wrongType(want Type) error {
	return fmt.Errorf("%w: field %d: wrong wire type %d, want %d", ErrInvalidWireFormat, d.num, d.typ, want)
}

func parseError(n int) error {
	return fmt.Errorf("%w: %v", ErrInvalidWireFormat, protowire.ParseError(n))
}

func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
