// Package metrics implements the OTLP ExportMetricsServiceRequest message
// tree: its wire codec, deep copies and semantic validation.
package metrics

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/grafana/otlpcodec/pkg/otlp/common"
	"github.com/grafana/otlpcodec/pkg/otlp/validation"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// Decode decodes an ExportMetricsServiceRequest from b. The result borrows
// strings and byte slices from b; use [ExportMetricsServiceRequest.Clone] to
// detach it.
func Decode(b []byte) (*ExportMetricsServiceRequest, error) {
	req := &ExportMetricsServiceRequest{}
	if err := req.Unmarshal(b); err != nil {
		return nil, errors.Wrap(err, "decoding metrics export request")
	}
	return req, nil
}

// Encode returns the canonical encoding of req.
func Encode(req *ExportMetricsServiceRequest) []byte {
	return req.MarshalAppend(nil)
}

// ExportMetricsServiceRequest is the payload of an OTLP metrics export.
type ExportMetricsServiceRequest struct {
	ResourceMetrics []*ResourceMetrics
}

func (x *ExportMetricsServiceRequest) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, x.ResourceMetrics)
}

var exportMetricsServiceRequestFields = wire.Fields{1: wire.BytesType}

func (x *ExportMetricsServiceRequest) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, exportMetricsServiceRequestFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.ResourceMetrics, err = wire.ReadRepeated(&d, x.ResourceMetrics)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ExportMetricsServiceRequest) Validate() error {
	return validation.Each(x.ResourceMetrics)
}

func (x *ExportMetricsServiceRequest) Clone() *ExportMetricsServiceRequest {
	if x == nil {
		return nil
	}
	return &ExportMetricsServiceRequest{
		ResourceMetrics: cloneEach(x.ResourceMetrics, (*ResourceMetrics).Clone),
	}
}

// DataPointCount returns the number of data points across all metrics.
func (x *ExportMetricsServiceRequest) DataPointCount() int {
	n := 0
	for _, rm := range x.ResourceMetrics {
		n += rm.DataPointCount()
	}
	return n
}

// ResourceMetrics is a collection of ScopeMetrics from a Resource.
type ResourceMetrics struct {
	Resource     *common.Resource
	ScopeMetrics []*ScopeMetrics
	SchemaURL    string
}

func (x *ResourceMetrics) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Resource != nil {
		b = wire.AppendMessage(b, 1, x.Resource)
	}
	b = wire.AppendRepeated(b, 2, x.ScopeMetrics)
	if x.SchemaURL != "" {
		b = wire.AppendString(b, 3, x.SchemaURL)
	}
	return b
}

var resourceMetricsFields = wire.Fields{1: wire.BytesType, 2: wire.BytesType, 3: wire.BytesType}

func (x *ResourceMetrics) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, resourceMetricsFields)
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
			x.ScopeMetrics, err = wire.ReadRepeated(&d, x.ScopeMetrics)
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

// Validate validates the resource, then every scope, then the schema URL.
func (x *ResourceMetrics) Validate() error {
	if x.Resource != nil {
		if err := x.Resource.Validate(); err != nil {
			return err
		}
	}
	if err := validation.Each(x.ScopeMetrics); err != nil {
		return err
	}
	return validation.SchemaURL(x.SchemaURL)
}

func (x *ResourceMetrics) Clone() *ResourceMetrics {
	if x == nil {
		return nil
	}
	return &ResourceMetrics{
		Resource:     x.Resource.Clone(),
		ScopeMetrics: cloneEach(x.ScopeMetrics, (*ScopeMetrics).Clone),
		SchemaURL:    strings.Clone(x.SchemaURL),
	}
}

func (x *ResourceMetrics) DataPointCount() int {
	n := 0
	for _, sm := range x.ScopeMetrics {
		n += sm.DataPointCount()
	}
	return n
}

// ScopeMetrics is a collection of Metrics produced by a Scope.
type ScopeMetrics struct {
	Scope     *common.InstrumentationScope
	Metrics   []*Metric
	SchemaURL string
}

func (x *ScopeMetrics) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Scope != nil {
		b = wire.AppendMessage(b, 1, x.Scope)
	}
	b = wire.AppendRepeated(b, 2, x.Metrics)
	if x.SchemaURL != "" {
		b = wire.AppendString(b, 3, x.SchemaURL)
	}
	return b
}

var scopeMetricsFields = wire.Fields{1: wire.BytesType, 2: wire.BytesType, 3: wire.BytesType}

func (x *ScopeMetrics) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, scopeMetricsFields)
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
			x.Metrics, err = wire.ReadRepeated(&d, x.Metrics)
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

// Validate validates the scope, then every metric, then the schema URL.
func (x *ScopeMetrics) Validate() error {
	if x.Scope != nil {
		if err := x.Scope.Validate(); err != nil {
			return err
		}
	}
	if err := validation.Each(x.Metrics); err != nil {
		return err
	}
	return validation.SchemaURL(x.SchemaURL)
}

func (x *ScopeMetrics) Clone() *ScopeMetrics {
	if x == nil {
		return nil
	}
	return &ScopeMetrics{
		Scope:     x.Scope.Clone(),
		Metrics:   cloneEach(x.Metrics, (*Metric).Clone),
		SchemaURL: strings.Clone(x.SchemaURL),
	}
}

func (x *ScopeMetrics) DataPointCount() int {
	n := 0
	for _, m := range x.Metrics {
		n += m.DataPointCount()
	}
	return n
}
