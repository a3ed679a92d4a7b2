package trace

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/grafana/otlpcodec/pkg/otlp/common"
	"github.com/grafana/otlpcodec/pkg/otlp/validation"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// SpanKind is the type of span.
type SpanKind int32

const (
	SpanKindUnspecified SpanKind = iota
	SpanKindInternal
	SpanKindServer
	SpanKindClient
	SpanKindProducer
	SpanKindConsumer
)

var spanKindNames = [...]string{
	"SPAN_KIND_UNSPECIFIED",
	"SPAN_KIND_INTERNAL",
	"SPAN_KIND_SERVER",
	"SPAN_KIND_CLIENT",
	"SPAN_KIND_PRODUCER",
	"SPAN_KIND_CONSUMER",
}

func (k SpanKind) String() string {
	if k >= 0 && int(k) < len(spanKindNames) {
		return spanKindNames[k]
	}
	return fmt.Sprintf("SpanKind(%d)", int32(k))
}

// SpanFlags are the bit flags of a span or link. The low byte carries the W3C
// trace flags.
type SpanFlags uint32

const (
	SpanFlagsTraceFlagsMask        SpanFlags = 0x000000FF
	SpanFlagsContextHasIsRemote    SpanFlags = 0x00000100
	SpanFlagsContextIsRemote       SpanFlags = 0x00000200
	spanFlagsContextIsRemoteMasked           = SpanFlagsContextHasIsRemote | SpanFlagsContextIsRemote
)

// IsRemote reports whether the parent (or linked) span context is known to
// be remote. The second result is false when this is not recorded.
func (f SpanFlags) IsRemote() (remote, known bool) {
	if f&SpanFlagsContextHasIsRemote == 0 {
		return false, false
	}
	return f&spanFlagsContextIsRemoteMasked == spanFlagsContextIsRemoteMasked, true
}

// A Span represents a single operation performed by a single component of
// the system.
type Span struct {
	TraceID                []byte
	SpanID                 []byte
	TraceState             string
	ParentSpanID           []byte
	Name                   string
	Kind                   SpanKind
	StartTimeUnixNano      uint64
	EndTimeUnixNano        uint64
	Attributes             []*common.KeyValue
	DroppedAttributesCount uint32
	Events                 []*Event
	DroppedEventsCount     uint32
	Links                  []*Link
	DroppedLinksCount      uint32
	Status                 *Status
	Flags                  SpanFlags
}

func (x *Span) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if len(x.TraceID) > 0 {
		b = wire.AppendBytes(b, 1, x.TraceID)
	}
	if len(x.SpanID) > 0 {
		b = wire.AppendBytes(b, 2, x.SpanID)
	}
	if x.TraceState != "" {
		b = wire.AppendString(b, 3, x.TraceState)
	}
	if len(x.ParentSpanID) > 0 {
		b = wire.AppendBytes(b, 4, x.ParentSpanID)
	}
	if x.Name != "" {
		b = wire.AppendString(b, 5, x.Name)
	}
	if x.Kind != 0 {
		b = wire.AppendInt32(b, 6, int32(x.Kind))
	}
	if x.StartTimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 7, x.StartTimeUnixNano)
	}
	if x.EndTimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 8, x.EndTimeUnixNano)
	}
	b = common.AppendAttributes(b, 9, x.Attributes)
	if x.DroppedAttributesCount != 0 {
		b = wire.AppendVarint(b, 10, uint64(x.DroppedAttributesCount))
	}
	b = wire.AppendRepeated(b, 11, x.Events)
	if x.DroppedEventsCount != 0 {
		b = wire.AppendVarint(b, 12, uint64(x.DroppedEventsCount))
	}
	b = wire.AppendRepeated(b, 13, x.Links)
	if x.DroppedLinksCount != 0 {
		b = wire.AppendVarint(b, 14, uint64(x.DroppedLinksCount))
	}
	if x.Status != nil {
		b = wire.AppendMessage(b, 15, x.Status)
	}
	if x.Flags != 0 {
		b = wire.AppendFixed32(b, 16, uint32(x.Flags))
	}
	return b
}

var spanFields = wire.Fields{
	1:  wire.BytesType,
	2:  wire.BytesType,
	3:  wire.BytesType,
	4:  wire.BytesType,
	5:  wire.BytesType,
	6:  wire.VarintType,
	7:  wire.Fixed64Type,
	8:  wire.Fixed64Type,
	9:  wire.BytesType,
	10: wire.VarintType,
	11: wire.BytesType,
	12: wire.VarintType,
	13: wire.BytesType,
	14: wire.VarintType,
	15: wire.BytesType,
	16: wire.Fixed32Type,
}

func (x *Span) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, spanFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.TraceID, err = d.Bytes()
		case 2:
			x.SpanID, err = d.Bytes()
		case 3:
			x.TraceState, err = d.Text()
		case 4:
			x.ParentSpanID, err = d.Bytes()
		case 5:
			x.Name, err = d.Text()
		case 6:
			var v int32
			v, err = d.Int32()
			x.Kind = SpanKind(v)
		case 7:
			x.StartTimeUnixNano, err = d.Fixed64()
		case 8:
			x.EndTimeUnixNano, err = d.Fixed64()
		case 9:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
		case 10:
			x.DroppedAttributesCount, err = d.Uint32()
		case 11:
			x.Events, err = wire.ReadRepeated(&d, x.Events)
		case 12:
			x.DroppedEventsCount, err = d.Uint32()
		case 13:
			x.Links, err = wire.ReadRepeated(&d, x.Links)
		case 14:
			x.DroppedLinksCount, err = d.Uint32()
		case 15:
			if x.Status == nil {
				x.Status = &Status{}
			}
			err = d.Message(x.Status)
		case 16:
			var v uint32
			v, err = d.Fixed32()
			x.Flags = SpanFlags(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate validates attributes, events, links and status in that order.
func (x *Span) Validate() error {
	if err := common.ValidateAttributes(x.Attributes); err != nil {
		return err
	}
	if err := validation.Each(x.Events); err != nil {
		return err
	}
	if err := validation.Each(x.Links); err != nil {
		return err
	}
	if x.Status != nil {
		return x.Status.Validate()
	}
	return nil
}

func (x *Span) Clone() *Span {
	if x == nil {
		return nil
	}
	out := &Span{
		TraceID:                bytes.Clone(x.TraceID),
		SpanID:                 bytes.Clone(x.SpanID),
		TraceState:             strings.Clone(x.TraceState),
		ParentSpanID:           bytes.Clone(x.ParentSpanID),
		Name:                   strings.Clone(x.Name),
		Kind:                   x.Kind,
		StartTimeUnixNano:      x.StartTimeUnixNano,
		EndTimeUnixNano:        x.EndTimeUnixNano,
		Attributes:             common.CloneAttributes(x.Attributes),
		DroppedAttributesCount: x.DroppedAttributesCount,
		DroppedEventsCount:     x.DroppedEventsCount,
		DroppedLinksCount:      x.DroppedLinksCount,
		Status:                 x.Status.Clone(),
		Flags:                  x.Flags,
	}
	for _, e := range x.Events {
		out.Events = append(out.Events, e.Clone())
	}
	for _, l := range x.Links {
		out.Links = append(out.Links, l.Clone())
	}
	return out
}

// Event is a time-stamped annotation of the span.
type Event struct {
	TimeUnixNano           uint64
	Name                   string
	Attributes             []*common.KeyValue
	DroppedAttributesCount uint32
}

func (x *Event) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.TimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 1, x.TimeUnixNano)
	}
	if x.Name != "" {
		b = wire.AppendString(b, 2, x.Name)
	}
	b = common.AppendAttributes(b, 3, x.Attributes)
	if x.DroppedAttributesCount != 0 {
		b = wire.AppendVarint(b, 4, uint64(x.DroppedAttributesCount))
	}
	return b
}

var eventFields = wire.Fields{
	1: wire.Fixed64Type,
	2: wire.BytesType,
	3: wire.BytesType,
	4: wire.VarintType,
}

func (x *Event) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, eventFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.TimeUnixNano, err = d.Fixed64()
		case 2:
			x.Name, err = d.Text()
		case 3:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
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

func (x *Event) Validate() error {
	return common.ValidateAttributes(x.Attributes)
}

func (x *Event) Clone() *Event {
	if x == nil {
		return nil
	}
	return &Event{
		TimeUnixNano:           x.TimeUnixNano,
		Name:                   strings.Clone(x.Name),
		Attributes:             common.CloneAttributes(x.Attributes),
		DroppedAttributesCount: x.DroppedAttributesCount,
	}
}

// A Link is a pointer from the current span to another span in the same
// trace or in a different trace.
type Link struct {
	TraceID                []byte
	SpanID                 []byte
	TraceState             string
	Attributes             []*common.KeyValue
	DroppedAttributesCount uint32
	Flags                  SpanFlags
}

func (x *Link) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if len(x.TraceID) > 0 {
		b = wire.AppendBytes(b, 1, x.TraceID)
	}
	if len(x.SpanID) > 0 {
		b = wire.AppendBytes(b, 2, x.SpanID)
	}
	if x.TraceState != "" {
		b = wire.AppendString(b, 3, x.TraceState)
	}
	b = common.AppendAttributes(b, 4, x.Attributes)
	if x.DroppedAttributesCount != 0 {
		b = wire.AppendVarint(b, 5, uint64(x.DroppedAttributesCount))
	}
	if x.Flags != 0 {
		b = wire.AppendFixed32(b, 6, uint32(x.Flags))
	}
	return b
}

var linkFields = wire.Fields{
	1: wire.BytesType,
	2: wire.BytesType,
	3: wire.BytesType,
	4: wire.BytesType,
	5: wire.VarintType,
	6: wire.Fixed32Type,
}

func (x *Link) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, linkFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.TraceID, err = d.Bytes()
		case 2:
			x.SpanID, err = d.Bytes()
		case 3:
			x.TraceState, err = d.Text()
		case 4:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
		case 5:
			x.DroppedAttributesCount, err = d.Uint32()
		case 6:
			var v uint32
			v, err = d.Fixed32()
			x.Flags = SpanFlags(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Link) Validate() error {
	return common.ValidateAttributes(x.Attributes)
}

func (x *Link) Clone() *Link {
	if x == nil {
		return nil
	}
	return &Link{
		TraceID:                bytes.Clone(x.TraceID),
		SpanID:                 bytes.Clone(x.SpanID),
		TraceState:             strings.Clone(x.TraceState),
		Attributes:             common.CloneAttributes(x.Attributes),
		DroppedAttributesCount: x.DroppedAttributesCount,
		Flags:                  x.Flags,
	}
}

// StatusCode is the status of a span.
type StatusCode int32

const (
	StatusCodeUnset StatusCode = 0
	StatusCodeOk    StatusCode = 1
	StatusCodeError StatusCode = 2
)

func (c StatusCode) String() string {
	switch c {
	case StatusCodeUnset:
		return "STATUS_CODE_UNSET"
	case StatusCodeOk:
		return "STATUS_CODE_OK"
	case StatusCodeError:
		return "STATUS_CODE_ERROR"
	}
	return fmt.Sprintf("StatusCode(%d)", int32(c))
}

// Status is the result of a span.
type Status struct {
	Message string
	Code    StatusCode
}

func (x *Status) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Message != "" {
		b = wire.AppendString(b, 2, x.Message)
	}
	if x.Code != 0 {
		b = wire.AppendInt32(b, 3, int32(x.Code))
	}
	return b
}

var statusFields = wire.Fields{2: wire.BytesType, 3: wire.VarintType}

func (x *Status) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, statusFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 2:
			x.Message, err = d.Text()
		case 3:
			var v int32
			v, err = d.Int32()
			x.Code = StatusCode(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Status) Validate() error { return nil }

func (x *Status) Clone() *Status {
	if x == nil {
		return nil
	}
	return &Status{Message: strings.Clone(x.Message), Code: x.Code}
}
