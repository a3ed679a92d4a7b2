package common

import (
	"strings"

	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// AttrServiceName is the resource attribute naming the emitting service.
const AttrServiceName = "service.name"

// Resource information.
type Resource struct {
	// Set of attributes that describe the resource.
	Attributes []*KeyValue
	// The number of dropped attributes. If the value is 0, then no attributes
	// were dropped.
	DroppedAttributesCount uint32
}

func (x *Resource) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = AppendAttributes(b, 1, x.Attributes)
	if x.DroppedAttributesCount != 0 {
		b = wire.AppendVarint(b, 2, uint64(x.DroppedAttributesCount))
	}
	return b
}

var resourceFields = wire.Fields{1: wire.BytesType, 2: wire.VarintType}

func (x *Resource) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, resourceFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Attributes, err = ReadAttribute(&d, x.Attributes)
		case 2:
			x.DroppedAttributesCount, err = d.Uint32()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the attributes. The dropped count is informational.
func (x *Resource) Validate() error {
	return ValidateAttributes(x.Attributes)
}

func (x *Resource) Clone() *Resource {
	if x == nil {
		return nil
	}
	return &Resource{
		Attributes:             CloneAttributes(x.Attributes),
		DroppedAttributesCount: x.DroppedAttributesCount,
	}
}

// ServiceName returns the service.name attribute as a string, or "" when it
// is not set.
func (x *Resource) ServiceName() string {
	if x == nil {
		return ""
	}
	v, _ := Attribute(x.Attributes, AttrServiceName)
	return v.AsString()
}

// InstrumentationScope is a message representing the instrumentation scope
// information such as the fully qualified name and version.
type InstrumentationScope struct {
	Name                   string
	Version                string
	Attributes             []*KeyValue
	DroppedAttributesCount uint32
}

func (x *InstrumentationScope) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Name != "" {
		b = wire.AppendString(b, 1, x.Name)
	}
	if x.Version != "" {
		b = wire.AppendString(b, 2, x.Version)
	}
	b = AppendAttributes(b, 3, x.Attributes)
	if x.DroppedAttributesCount != 0 {
		b = wire.AppendVarint(b, 4, uint64(x.DroppedAttributesCount))
	}
	return b
}

var instrumentationScopeFields = wire.Fields{
	1: wire.BytesType,
	2: wire.BytesType,
	3: wire.BytesType,
	4: wire.VarintType,
}

func (x *InstrumentationScope) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, instrumentationScopeFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Name, err = d.Text()
		case 2:
			x.Version, err = d.Text()
		case 3:
			x.Attributes, err = ReadAttribute(&d, x.Attributes)
		case 4:
			x.DroppedAttributesCount, err = d.Uint32()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *InstrumentationScope) Validate() error {
	return ValidateAttributes(x.Attributes)
}

func (x *InstrumentationScope) Clone() *InstrumentationScope {
	if x == nil {
		return nil
	}
	return &InstrumentationScope{
		Name:                   strings.Clone(x.Name),
		Version:                strings.Clone(x.Version),
		Attributes:             CloneAttributes(x.Attributes),
		DroppedAttributesCount: x.DroppedAttributesCount,
	}
}
