package wire

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// testMessage is a message with a string, a varint, packed counts and a
// repeated nested message.
type testMessage struct {
	Name     string
	Value    uint64
	Counts   []uint64
	Children []*testMessage
}

func (m *testMessage) MarshalAppend(b []byte) []byte {
	if m.Name != "" {
		b = AppendString(b, 1, m.Name)
	}
	if m.Value != 0 {
		b = AppendVarint(b, 2, m.Value)
	}
	b = AppendRepeated(b, 3, m.Children)
	b = AppendPackedFixed64(b, 4, m.Counts)
	return b
}

var testMessageFields = Fields{
	1: BytesType,
	2: VarintType,
	3: BytesType,
	4: Packed(Fixed64Type),
}

func (m *testMessage) Unmarshal(b []byte) error {
	d := NewDecoder(b, testMessageFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			m.Name, err = d.Text()
		case 2:
			m.Value, err = d.Varint()
		case 3:
			m.Children, err = ReadRepeated(&d, m.Children)
		case 4:
			m.Counts, err = d.Fixed64s(m.Counts)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func TestRoundTrip(t *testing.T) {
	in := &testMessage{
		Name:   "parent",
		Value:  math.MaxUint64,
		Counts: []uint64{0, 1, math.MaxUint64},
		Children: []*testMessage{
			{Name: "child"},
			{},
			{Value: 300},
		},
	}

	var out testMessage
	require.NoError(t, out.Unmarshal(Marshal(in)))
	require.Equal(t, in, &out)
}

func TestMarshalDelimited(t *testing.T) {
	for _, tc := range []struct {
		name       string
		msg        *testMessage
		prefixSize int
	}{
		{name: "empty", msg: &testMessage{}, prefixSize: 1},
		{name: "short", msg: &testMessage{Name: "test"}, prefixSize: 1},
		{name: "127 bytes", msg: &testMessage{Name: strings.Repeat("a", 125)}, prefixSize: 1},
		{name: "129 bytes", msg: &testMessage{Name: strings.Repeat("a", 125), Value: 1}, prefixSize: 2},
		{name: "large", msg: &testMessage{Name: strings.Repeat("a", 20000)}, prefixSize: 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			plain := Marshal(tc.msg)
			delimited := MarshalDelimited(tc.msg)

			require.Len(t, delimited, len(plain)+tc.prefixSize)
			require.Equal(t, plain, delimited[tc.prefixSize:])

			size, n := protowire.ConsumeVarint(delimited)
			require.Equal(t, tc.prefixSize, n)
			require.Equal(t, uint64(len(plain)), size)

			var out testMessage
			consumed, err := UnmarshalDelimited(append(delimited, 0xff), &out)
			require.NoError(t, err)
			require.Equal(t, len(delimited), consumed)
			require.Equal(t, tc.msg.Name, out.Name)
		})
	}
}

func TestNestedLengthPrefixes(t *testing.T) {
	in := &testMessage{Children: []*testMessage{
		{Name: strings.Repeat("x", 200)},
		{Name: "y"},
	}}

	var out testMessage
	require.NoError(t, out.Unmarshal(Marshal(in)))
	require.Equal(t, in, &out)
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input []byte
	}{
		{name: "truncated tag", input: []byte{0x80}},
		{name: "field number zero", input: []byte{0x00, 0x00}},
		{name: "varint overflow", input: []byte{0x10, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
		{name: "truncated varint", input: []byte{0x10, 0xff}},
		{name: "length exceeds input", input: []byte{0x0a, 0x05, 'a', 'b'}},
		{name: "truncated fixed64", input: []byte{0x29, 0x01, 0x02}},
		{name: "truncated fixed32", input: []byte{0x2d, 0x01}},
		{name: "invalid utf-8", input: []byte{0x0a, 0x02, 0xc3, 0x28}},
		{name: "packed fixed64 not a multiple of 8", input: []byte{0x22, 0x03, 0x01, 0x02, 0x03}},
		{name: "error in nested message", input: []byte{0x1a, 0x02, 0x10, 0xff}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var m testMessage
			err := m.Unmarshal(tc.input)
			require.ErrorIs(t, err, ErrInvalidWireFormat)
		})
	}
}

func TestNestedErrorNamesField(t *testing.T) {
	var m testMessage
	err := m.Unmarshal([]byte{0x1a, 0x02, 0x10, 0xff})
	require.ErrorContains(t, err, "field 3")
}

func TestMismatchedWireTypeIsSkipped(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input []byte
		want  testMessage
	}{
		{name: "varint for string", input: []byte{0x08, 0x01}},
		{name: "bytes for varint", input: []byte{0x12, 0x00}},
		{name: "fixed32 for packed fixed64", input: []byte{0x25, 0x01, 0x02, 0x03, 0x04}},
		{
			name:  "fixed32 after string",
			input: append(AppendString(nil, 1, "kept"), 0x0d, 0x07, 0x00, 0x00, 0x00),
			want:  testMessage{Name: "kept"},
		},
		{
			name:  "group for nested message",
			input: []byte{0x1b, 0x08, 0x01, 0x1c, 0x10, 0x05},
			want:  testMessage{Value: 5},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var m testMessage
			require.NoError(t, m.Unmarshal(tc.input))
			require.Equal(t, tc.want, m)
		})
	}
}

func TestMismatchedWireTypeStillNeedsValidFraming(t *testing.T) {
	var m testMessage
	err := m.Unmarshal([]byte{0x0d, 0x07, 0x00})
	require.ErrorIs(t, err, ErrInvalidWireFormat)
}

func TestValueMethodsCheckWireType(t *testing.T) {
	d := NewDecoder([]byte{0x08, 0x01}, nil)
	num, err := d.Next()
	require.NoError(t, err)
	require.Equal(t, Number(1), num)

	_, err = d.Bytes()
	require.ErrorIs(t, err, ErrInvalidWireFormat)
	require.ErrorContains(t, err, "wrong wire type 0, want 2")
}

func TestSkipUnknownFields(t *testing.T) {
	var b []byte
	b = AppendVarint(b, 10, 1)
	b = AppendFixed32(b, 11, 2)
	b = AppendFixed64(b, 12, 3)
	b = AppendBytes(b, 13, []byte("ignored"))
	b = AppendString(b, 1, "kept")
	b = protowire.AppendTag(b, 14, protowire.StartGroupType)
	b = AppendVarint(b, 1, 5)
	b = protowire.AppendTag(b, 14, protowire.EndGroupType)

	var m testMessage
	require.NoError(t, m.Unmarshal(b))
	require.Equal(t, testMessage{Name: "kept"}, m)
}

func TestUint64sPackedAndUnpacked(t *testing.T) {
	var packed []byte
	packed = protowire.AppendTag(packed, 1, BytesType)
	packed = protowire.AppendBytes(packed, protowire.AppendVarint(protowire.AppendVarint(nil, 1), math.MaxUint64))

	var unpacked []byte
	unpacked = AppendVarint(unpacked, 1, 1)
	unpacked = AppendVarint(unpacked, 1, math.MaxUint64)

	for name, input := range map[string][]byte{"packed": packed, "unpacked": unpacked} {
		t.Run(name, func(t *testing.T) {
			var got []uint64
			d := NewDecoder(input, nil)
			for !d.Done() {
				_, err := d.Next()
				require.NoError(t, err)
				got, err = d.Uint64s(got)
				require.NoError(t, err)
			}
			require.Equal(t, []uint64{1, math.MaxUint64}, got)
		})
	}
}

func TestDoublesPackedAndUnpacked(t *testing.T) {
	want := []float64{1.3, math.Copysign(0, -1), math.Inf(1)}

	packed := AppendPackedDouble(nil, 1, want)
	var unpacked []byte
	for _, v := range want {
		unpacked = AppendDouble(unpacked, 1, v)
	}

	for name, input := range map[string][]byte{"packed": packed, "unpacked": unpacked} {
		t.Run(name, func(t *testing.T) {
			var got []float64
			d := NewDecoder(input, nil)
			for !d.Done() {
				_, err := d.Next()
				require.NoError(t, err)
				got, err = d.Doubles(got)
				require.NoError(t, err)
			}
			require.Len(t, got, len(want))
			for i := range want {
				require.Equal(t, math.Float64bits(want[i]), math.Float64bits(got[i]))
			}
		})
	}
}

func TestScalarEncodings(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  []byte
		want []byte
	}{
		{name: "varint", got: AppendVarint(nil, 1, 300), want: []byte{0x08, 0xac, 0x02}},
		{name: "bool", got: AppendBool(nil, 2, true), want: []byte{0x10, 0x01}},
		{name: "negative int32", got: AppendInt32(nil, 1, -1), want: []byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
		{name: "sint32", got: AppendSint32(nil, 6, 10), want: []byte{0x30, 0x14}},
		{name: "negative sint32", got: AppendSint32(nil, 6, -1), want: []byte{0x30, 0x01}},
		{name: "fixed32", got: AppendFixed32(nil, 8, 1), want: []byte{0x45, 0x01, 0x00, 0x00, 0x00}},
		{name: "fixed64", got: AppendFixed64(nil, 1, 1), want: []byte{0x09, 0x01, 0, 0, 0, 0, 0, 0, 0}},
		{name: "string", got: AppendString(nil, 1, "test"), want: []byte{0x0a, 0x04, 't', 'e', 's', 't'}},
		{name: "empty packed", got: AppendPackedFixed64(nil, 1, nil), want: nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestSignedDecoding(t *testing.T) {
	b := AppendInt32(nil, 1, -5)
	b = AppendSint32(b, 2, -7)

	d := NewDecoder(b, nil)
	_, err := d.Next()
	require.NoError(t, err)
	i, err := d.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-5), i)

	_, err = d.Next()
	require.NoError(t, err)
	s, err := d.Sint32()
	require.NoError(t, err)
	require.Equal(t, int32(-7), s)
	require.True(t, d.Done())
}

func TestBytesAreClipped(t *testing.T) {
	input := []byte{0x0a, 0x02, 'a', 'b', 0x10, 0x01}
	d := NewDecoder(input, nil)
	_, err := d.Next()
	require.NoError(t, err)
	v, err := d.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), v)
	require.Equal(t, len(v), cap(v))
}
