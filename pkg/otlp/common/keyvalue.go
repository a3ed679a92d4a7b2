package common

import (
	"strings"

	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// KeyValue is a key-value pair that is used to store Span attributes, Link
// attributes, etc.
type KeyValue struct {
	Key   string
	Value *AnyValue
}

func (x *KeyValue) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Key != "" {
		b = wire.AppendString(b, 1, x.Key)
	}
	if x.Value != nil {
		b = wire.AppendMessage(b, 2, x.Value)
	}
	return b
}

var keyValueFields = wire.Fields{1: wire.BytesType, 2: wire.BytesType}

func (x *KeyValue) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, keyValueFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Key, err = d.Text()
		case 2:
			if x.Value == nil {
				x.Value = &AnyValue{}
			}
			err = d.Message(x.Value)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the value, when present.
func (x *KeyValue) Validate() error {
	if x.Value == nil {
		return nil
	}
	return x.Value.Validate()
}

func (x *KeyValue) Clone() *KeyValue {
	if x == nil {
		return nil
	}
	return &KeyValue{
		Key:   strings.Clone(x.Key),
		Value: x.Value.Clone(),
	}
}

// AppendAttributes appends attrs as a repeated KeyValue field.
func AppendAttributes(b []byte, num wire.Number, attrs []*KeyValue) []byte {
	for _, kv := range attrs {
		b = wire.AppendMessage(b, num, kv)
	}
	return b
}

// ReadAttribute decodes the current field of d as a KeyValue and appends it
// to attrs.
func ReadAttribute(d *wire.Decoder, attrs []*KeyValue) ([]*KeyValue, error) {
	kv := &KeyValue{}
	if err := d.Message(kv); err != nil {
		return attrs, err
	}
	return append(attrs, kv), nil
}

// ValidateAttributes validates each attribute and returns the first error.
func ValidateAttributes(attrs []*KeyValue) error {
	for _, kv := range attrs {
		if err := kv.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CloneAttributes deep copies attrs. A nil slice stays nil.
func CloneAttributes(attrs []*KeyValue) []*KeyValue {
	if attrs == nil {
		return nil
	}
	out := make([]*KeyValue, 0, len(attrs))
	for _, kv := range attrs {
		out = append(out, kv.Clone())
	}
	return out
}

// Attribute returns the value of the first attribute named key.
func Attribute(attrs []*KeyValue, key string) (*AnyValue, bool) {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}
