package common

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// Value is the union held by an [AnyValue]. It is implemented by
// [StringValue], [BoolValue], [IntValue], [DoubleValue], [*ArrayValue],
// [*KeyValueList] and [BytesValue].
type Value interface{ isAnyValue() }

type (
	StringValue string
	BoolValue   bool
	IntValue    int64
	DoubleValue float64
	BytesValue  []byte
)

func (StringValue) isAnyValue()   {}
func (BoolValue) isAnyValue()     {}
func (IntValue) isAnyValue()      {}
func (DoubleValue) isAnyValue()   {}
func (BytesValue) isAnyValue()    {}
func (*ArrayValue) isAnyValue()   {}
func (*KeyValueList) isAnyValue() {}

// AnyValue is used to represent any type of attribute value. A nil Value is
// a legal, empty AnyValue.
type AnyValue struct {
	Value Value
}

// MarshalAppend implements [wire.Message]. The set variant is always written,
// even when it holds a zero value.
func (x *AnyValue) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	switch v := x.Value.(type) {
	case nil:
	case StringValue:
		b = wire.AppendString(b, 1, string(v))
	case BoolValue:
		b = wire.AppendBool(b, 2, bool(v))
	case IntValue:
		b = wire.AppendVarint(b, 3, uint64(v))
	case DoubleValue:
		b = wire.AppendDouble(b, 4, float64(v))
	case *ArrayValue:
		b = wire.AppendMessage(b, 5, v)
	case *KeyValueList:
		b = wire.AppendMessage(b, 6, v)
	case BytesValue:
		b = wire.AppendBytes(b, 7, v)
	default:
		panic(fmt.Sprintf("common: unexpected AnyValue type %T", v))
	}
	return b
}

var anyValueFields = wire.Fields{
	1: wire.BytesType,
	2: wire.VarintType,
	3: wire.VarintType,
	4: wire.Fixed64Type,
	5: wire.BytesType,
	6: wire.BytesType,
	7: wire.BytesType,
}

// Unmarshal implements [wire.Message]. When more than one variant is present
// on the wire the last one wins.
func (x *AnyValue) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, anyValueFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			var v string
			v, err = d.Text()
			x.Value = StringValue(v)
		case 2:
			var v bool
			v, err = d.Bool()
			x.Value = BoolValue(v)
		case 3:
			var v int64
			v, err = d.Int64()
			x.Value = IntValue(v)
		case 4:
			var v float64
			v, err = d.Double()
			x.Value = DoubleValue(v)
		case 5:
			arr, ok := x.Value.(*ArrayValue)
			if !ok || arr == nil {
				arr = &ArrayValue{}
			}
			err = d.Message(arr)
			x.Value = arr
		case 6:
			kvs, ok := x.Value.(*KeyValueList)
			if !ok || kvs == nil {
				kvs = &KeyValueList{}
			}
			err = d.Message(kvs)
			x.Value = kvs
		case 7:
			var v []byte
			v, err = d.Bytes()
			x.Value = BytesValue(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks nested arrays and maps. Scalar variants are always valid.
func (x *AnyValue) Validate() error {
	if x == nil {
		return nil
	}
	switch v := x.Value.(type) {
	case nil, StringValue, BoolValue, IntValue, DoubleValue, BytesValue:
		return nil
	case *ArrayValue:
		return v.Validate()
	case *KeyValueList:
		return v.Validate()
	default:
		panic(fmt.Sprintf("common: unexpected AnyValue type %T", v))
	}
}

// Clone returns a deep copy of x which does not alias any decoded input.
func (x *AnyValue) Clone() *AnyValue {
	if x == nil {
		return nil
	}
	var v Value
	switch src := x.Value.(type) {
	case StringValue:
		v = StringValue(strings.Clone(string(src)))
	case BytesValue:
		v = BytesValue(bytes.Clone(src))
	case *ArrayValue:
		v = src.Clone()
	case *KeyValueList:
		v = src.Clone()
	default:
		v = src
	}
	return &AnyValue{Value: v}
}

// AsString renders the value as a string. Strings are returned as is, bytes
// are base64 encoded and arrays and maps are rendered in a compact form.
func (x *AnyValue) AsString() string {
	if x == nil {
		return ""
	}
	switch v := x.Value.(type) {
	case nil:
		return ""
	case StringValue:
		return string(v)
	case BoolValue:
		return strconv.FormatBool(bool(v))
	case IntValue:
		return strconv.FormatInt(int64(v), 10)
	case DoubleValue:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case BytesValue:
		return base64.StdEncoding.EncodeToString(v)
	case *ArrayValue:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.GetValues() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(e.AsString())
		}
		sb.WriteByte(']')
		return sb.String()
	case *KeyValueList:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, kv := range v.GetValues() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(kv.Key)
			sb.WriteByte(':')
			sb.WriteString(kv.Value.AsString())
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		panic(fmt.Sprintf("common: unexpected AnyValue type %T", v))
	}
}

// ArrayValue is a list of AnyValue messages.
type ArrayValue struct {
	Values []*AnyValue
}

// GetValues returns the values of x, or nil when x is nil.
func (x *ArrayValue) GetValues() []*AnyValue {
	if x == nil {
		return nil
	}
	return x.Values
}

func (x *ArrayValue) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, v := range x.Values {
		b = wire.AppendMessage(b, 1, v)
	}
	return b
}

var arrayValueFields = wire.Fields{1: wire.BytesType}

func (x *ArrayValue) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, arrayValueFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			v := &AnyValue{}
			err = d.Message(v)
			x.Values = append(x.Values, v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ArrayValue) Validate() error {
	if x == nil {
		return nil
	}
	for _, v := range x.Values {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (x *ArrayValue) Clone() *ArrayValue {
	if x == nil {
		return nil
	}
	out := &ArrayValue{Values: make([]*AnyValue, 0, len(x.Values))}
	for _, v := range x.Values {
		out.Values = append(out.Values, v.Clone())
	}
	return out
}

// KeyValueList is a list of KeyValue messages. It is kept as a list rather
// than a map; keys are expected but not required to be unique.
type KeyValueList struct {
	Values []*KeyValue
}

// GetValues returns the values of x, or nil when x is nil.
func (x *KeyValueList) GetValues() []*KeyValue {
	if x == nil {
		return nil
	}
	return x.Values
}

func (x *KeyValueList) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	return AppendAttributes(b, 1, x.Values)
}

var keyValueListFields = wire.Fields{1: wire.BytesType}

func (x *KeyValueList) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, keyValueListFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Values, err = ReadAttribute(&d, x.Values)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *KeyValueList) Validate() error {
	if x == nil {
		return nil
	}
	return ValidateAttributes(x.Values)
}

func (x *KeyValueList) Clone() *KeyValueList {
	if x == nil {
		return nil
	}
	return &KeyValueList{Values: CloneAttributes(x.Values)}
}
