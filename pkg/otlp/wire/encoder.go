package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// The Append functions below always write their field. Callers decide
// whether a zero value is omitted.

// AppendVarint appends a varint field.
func AppendVarint(b []byte, num Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, VarintType)
	return protowire.AppendVarint(b, v)
}

// AppendBool appends a bool field.
func AppendBool(b []byte, num Number, v bool) []byte {
	b = protowire.AppendTag(b, num, VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// AppendInt32 appends an int32 or enum field. Negative values are sign
// extended to ten bytes.
func AppendInt32(b []byte, num Number, v int32) []byte {
	return AppendVarint(b, num, uint64(int64(v)))
}

// AppendSint32 appends a zigzag encoded sint32 field.
func AppendSint32(b []byte, num Number, v int32) []byte {
	return AppendVarint(b, num, protowire.EncodeZigZag(int64(v)))
}

// AppendFixed32 appends a fixed32 field.
func AppendFixed32(b []byte, num Number, v uint32) []byte {
	b = protowire.AppendTag(b, num, Fixed32Type)
	return protowire.AppendFixed32(b, v)
}

// AppendFixed64 appends a fixed64 field.
func AppendFixed64(b []byte, num Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, Fixed64Type)
	return protowire.AppendFixed64(b, v)
}

// AppendDouble appends a double field.
func AppendDouble(b []byte, num Number, v float64) []byte {
	return AppendFixed64(b, num, math.Float64bits(v))
}

// AppendBytes appends a length-delimited field.
func AppendBytes(b []byte, num Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendString appends a string field.
func AppendString(b []byte, num Number, v string) []byte {
	b = protowire.AppendTag(b, num, BytesType)
	return protowire.AppendString(b, v)
}

// AppendMessage appends m as a length-delimited field. An empty message is
// written as a tag with zero length.
func AppendMessage(b []byte, num Number, m Message) []byte {
	b = protowire.AppendTag(b, num, BytesType)
	return appendLengthPrefixed(b, m)
}

// AppendPackedFixed64 appends vs as a packed repeated fixed64 field. Nothing
// is written for an empty slice.
func AppendPackedFixed64(b []byte, num Number, vs []uint64) []byte {
	if len(vs) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, BytesType)
	b = protowire.AppendVarint(b, uint64(8*len(vs)))
	for _, v := range vs {
		b = protowire.AppendFixed64(b, v)
	}
	return b
}

// AppendPackedDouble appends vs as a packed repeated double field. Nothing is
// written for an empty slice.
func AppendPackedDouble(b []byte, num Number, vs []float64) []byte {
	if len(vs) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, BytesType)
	b = protowire.AppendVarint(b, uint64(8*len(vs)))
	for _, v := range vs {
		b = protowire.AppendFixed64(b, math.Float64bits(v))
	}
	return b
}

// appendLengthPrefixed encodes m in place after a one byte length
// placeholder. Messages of 128 bytes or more shift their encoding to make room
// for the longer prefix.
func appendLengthPrefixed(b []byte, m Message) []byte {
	b = append(b, 0)
	start := len(b)
	b = m.MarshalAppend(b)

	n := len(b) - start
	if n < 0x80 {
		b[start-1] = byte(n)
		return b
	}

	size := protowire.SizeVarint(uint64(n))
	for i := 1; i < size; i++ {
		b = append(b, 0)
	}
	copy(b[start-1+size:], b[start:start+n])
	_ = protowire.AppendVarint(b[:start-1], uint64(n))
	return b
}
