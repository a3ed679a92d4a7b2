// Package trace implements the OTLP ExportTraceServiceRequest message tree.
package trace

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/grafana/otlpcodec/pkg/otlp/common"
	"github.com/grafana/otlpcodec/pkg/otlp/validation"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// Decode decodes an ExportTraceServiceRequest from b. The result borrows from
// b.
func Decode(b []byte) (*ExportTraceServiceRequest, error) {
	req := &ExportTraceServiceRequest{}
	if err := req.Unmarshal(b); err != nil {
		return nil, errors.Wrap(err, "decoding trace export request")
	}
	return req, nil
}

// Encode returns the canonical encoding of req.
func Encode(req *ExportTraceServiceRequest) []byte {
	return req.MarshalAppend(nil)
}

// ExportTraceServiceRequest is the payload of an OTLP trace export.
type ExportTraceServiceRequest struct {
	ResourceSpans []*ResourceSpans
}

func (x *ExportTraceServiceRequest) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, x.ResourceSpans)
}

var exportTraceServiceRequestFields = wire.Fields{1: wire.BytesType}

func (x *ExportTraceServiceRequest) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, exportTraceServiceRequestFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.ResourceSpans, err = wire.ReadRepeated(&d, x.ResourceSpans)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ExportTraceServiceRequest) Validate() error {
	return validation.Each(x.ResourceSpans)
}

func (x *ExportTraceServiceRequest) Clone() *ExportTraceServiceRequest {
	if x == nil {
		return nil
	}
	out := &ExportTraceServiceRequest{}
	for _, rs := range x.ResourceSpans {
		out.ResourceSpans = append(out.ResourceSpans, rs.Clone())
	}
	return out
}

// SpanCount returns the number of spans in the request.
func (x *ExportTraceServiceRequest) SpanCount() int {
	n := 0
	for _, rs := range x.ResourceSpans {
		for _, ss := range rs.ScopeSpans {
			n += len(ss.Spans)
		}
	}
	return n
}

// ResourceSpans is a collection of ScopeSpans from a Resource.
type ResourceSpans struct {
	Resource   *common.Resource
	ScopeSpans []*ScopeSpans
	SchemaURL  string
}

func (x *ResourceSpans) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Resource != nil {
		b = wire.AppendMessage(b, 1, x.Resource)
	}
	b = wire.AppendRepeated(b, 2, x.ScopeSpans)
	if x.SchemaURL != "" {
		b = wire.AppendString(b, 3, x.SchemaURL)
	}
	return b
}

var resourceSpansFields = wire.Fields{1: wire.BytesType, 2: wire.BytesType, 3: wire.BytesType}

func (x *ResourceSpans) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, resourceSpansFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			if x.Resource == nil {
				x.Resource = &common.Resource{}
			}
			err = d.Message(x.Resource)
		case 2:
			x.ScopeSpans, err = wire.ReadRepeated(&d, x.ScopeSpans)
		case 3:
			x.SchemaURL, err = d.Text()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ResourceSpans) Validate() error {
	if x.Resource != nil {
		if err := x.Resource.Validate(); err != nil {
			return err
		}
	}
	if err := validation.Each(x.ScopeSpans); err != nil {
		return err
	}
	return validation.SchemaURL(x.SchemaURL)
}

func (x *ResourceSpans) Clone() *ResourceSpans {
	if x == nil {
		return nil
	}
	out := &ResourceSpans{
		Resource:  x.Resource.Clone(),
		SchemaURL: strings.Clone(x.SchemaURL),
	}
	for _, ss := range x.ScopeSpans {
		out.ScopeSpans = append(out.ScopeSpans, ss.Clone())
	}
	return out
}

// ScopeSpans is a collection of Spans produced by an InstrumentationScope.
type ScopeSpans struct {
	Scope     *common.InstrumentationScope
	Spans     []*Span
	SchemaURL string
}

func (x *ScopeSpans) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Scope != nil {
		b = wire.AppendMessage(b, 1, x.Scope)
	}
	b = wire.AppendRepeated(b, 2, x.Spans)
	if x.SchemaURL != "" {
		b = wire.AppendString(b, 3, x.SchemaURL)
	}
	return b
}

var scopeSpansFields = wire.Fields{1: wire.BytesType, 2: wire.BytesType, 3: wire.BytesType}

func (x *ScopeSpans) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, scopeSpansFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			if x.Scope == nil {
				x.Scope = &common.InstrumentationScope{}
			}
			err = d.Message(x.Scope)
		case 2:
			x.Spans, err = wire.ReadRepeated(&d, x.Spans)
		case 3:
			x.SchemaURL, err = d.Text()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ScopeSpans) Validate() error {
	if x.Scope != nil {
		if err := x.Scope.Validate(); err != nil {
			return err
		}
	}
	if err := validation.Each(x.Spans); err != nil {
		return err
	}
	return validation.SchemaURL(x.SchemaURL)
}

func (x *ScopeSpans) Clone() *ScopeSpans {
	if x == nil {
		return nil
	}
	out := &ScopeSpans{
		Scope:     x.Scope.Clone(),
		SchemaURL: strings.Clone(x.SchemaURL),
	}
	for _, s := range x.Spans {
		out.Spans = append(out.Spans, s.Clone())
	}
	return out
}
