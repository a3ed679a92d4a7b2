package metrics

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/grafana/otlpcodec/pkg/otlp/common"
	"github.com/grafana/otlpcodec/pkg/otlp/validation"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// DataPointFlags is a set of bit flags on a data point.
type DataPointFlags uint32

// DataPointFlagsNoRecordedValue marks a data point as a replacement for an
// explicit missing value, as with Prometheus staleness markers.
const DataPointFlagsNoRecordedValue DataPointFlags = 1

// NoRecordedValue reports whether the no-recorded-value flag is set.
func (f DataPointFlags) NoRecordedValue() bool {
	return f&DataPointFlagsNoRecordedValue != 0
}

// NumberValue is the value union of a [NumberDataPoint] or [Exemplar]. It is
// implemented by [AsInt] and [AsDouble].
type NumberValue interface{ isNumberValue() }

type (
	AsInt    int64
	AsDouble float64
)

func (AsInt) isNumberValue()    {}
func (AsDouble) isNumberValue() {}

// appendNumberValue writes v using the field numbers of the enclosing
// message.
func appendNumberValue(b []byte, v NumberValue, doubleField, intField wire.Number) []byte {
	switch v := v.(type) {
	case nil:
	case AsDouble:
		b = wire.AppendDouble(b, doubleField, float64(v))
	case AsInt:
		b = wire.AppendFixed64(b, intField, uint64(v))
	default:
		panic(fmt.Sprintf("metrics: unexpected number value type %T", v))
	}
	return b
}

// NumberDataPoint is a single data point in a timeseries that describes the
// time-varying scalar value of a metric.
type NumberDataPoint struct {
	Attributes        []*common.KeyValue
	StartTimeUnixNano uint64
	TimeUnixNano      uint64
	Value             NumberValue
	Exemplars         []*Exemplar
	Flags             DataPointFlags
}

func (x *NumberDataPoint) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = common.AppendAttributes(b, 7, x.Attributes)
	if x.StartTimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 2, x.StartTimeUnixNano)
	}
	if x.TimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 3, x.TimeUnixNano)
	}
	b = wire.AppendRepeated(b, 5, x.Exemplars)
	if x.Flags != 0 {
		b = wire.AppendVarint(b, 8, uint64(x.Flags))
	}
	return appendNumberValue(b, x.Value, 4, 6)
}

var numberDataPointFields = wire.Fields{
	2: wire.Fixed64Type,
	3: wire.Fixed64Type,
	4: wire.Fixed64Type,
	5: wire.BytesType,
	6: wire.Fixed64Type,
	7: wire.BytesType,
	8: wire.VarintType,
}

func (x *NumberDataPoint) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, numberDataPointFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 2:
			x.StartTimeUnixNano, err = d.Fixed64()
		case 3:
			x.TimeUnixNano, err = d.Fixed64()
		case 4:
			var v float64
			v, err = d.Double()
			x.Value = AsDouble(v)
		case 5:
			x.Exemplars, err = wire.ReadRepeated(&d, x.Exemplars)
		case 6:
			var v int64
			v, err = d.Sfixed64()
			x.Value = AsInt(v)
		case 7:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
		case 8:
			var v uint32
			v, err = d.Uint32()
			x.Flags = DataPointFlags(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *NumberDataPoint) Validate() error {
	if err := common.ValidateAttributes(x.Attributes); err != nil {
		return err
	}
	return validation.Each(x.Exemplars)
}

func (x *NumberDataPoint) Clone() *NumberDataPoint {
	if x == nil {
		return nil
	}
	return &NumberDataPoint{
		Attributes:        common.CloneAttributes(x.Attributes),
		StartTimeUnixNano: x.StartTimeUnixNano,
		TimeUnixNano:      x.TimeUnixNano,
		Value:             x.Value,
		Exemplars:         cloneEach(x.Exemplars, (*Exemplar).Clone),
		Flags:             x.Flags,
	}
}

// Exemplar is a representation of an exemplar, which is a sample input
// measurement.
type Exemplar struct {
	// Attributes that were filtered out by the aggregator but recorded with
	// the measurement.
	FilteredAttributes []*common.KeyValue
	TimeUnixNano       uint64
	Value              NumberValue
	SpanID             []byte
	TraceID            []byte
}

func (x *Exemplar) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = common.AppendAttributes(b, 7, x.FilteredAttributes)
	if x.TimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 2, x.TimeUnixNano)
	}
	if len(x.SpanID) > 0 {
		b = wire.AppendBytes(b, 4, x.SpanID)
	}
	if len(x.TraceID) > 0 {
		b = wire.AppendBytes(b, 5, x.TraceID)
	}
	return appendNumberValue(b, x.Value, 3, 6)
}

var exemplarFields = wire.Fields{
	2: wire.Fixed64Type,
	3: wire.Fixed64Type,
	4: wire.BytesType,
	5: wire.BytesType,
	6: wire.Fixed64Type,
	7: wire.BytesType,
}

func (x *Exemplar) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, exemplarFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 2:
			x.TimeUnixNano, err = d.Fixed64()
		case 3:
			var v float64
			v, err = d.Double()
			x.Value = AsDouble(v)
		case 4:
			x.SpanID, err = d.Bytes()
		case 5:
			x.TraceID, err = d.Bytes()
		case 6:
			var v int64
			v, err = d.Sfixed64()
			x.Value = AsInt(v)
		case 7:
			x.FilteredAttributes, err = common.ReadAttribute(&d, x.FilteredAttributes)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the filtered attributes. Trace and span ids are not
// length checked.
func (x *Exemplar) Validate() error {
	return common.ValidateAttributes(x.FilteredAttributes)
}

func (x *Exemplar) Clone() *Exemplar {
	if x == nil {
		return nil
	}
	return &Exemplar{
		FilteredAttributes: common.CloneAttributes(x.FilteredAttributes),
		TimeUnixNano:       x.TimeUnixNano,
		Value:              x.Value,
		SpanID:             bytes.Clone(x.SpanID),
		TraceID:            bytes.Clone(x.TraceID),
	}
}

// HistogramDataPoint is a single data point in a timeseries that describes
// the time-varying values of a Histogram.
//
// BucketCounts is expected to hold one more element than ExplicitBounds, and
// ExplicitBounds to be strictly increasing. Neither is enforced.
type HistogramDataPoint struct {
	Attributes        []*common.KeyValue
	StartTimeUnixNano uint64
	TimeUnixNano      uint64
	Count             uint64
	Sum               *float64
	BucketCounts      []uint64
	ExplicitBounds    []float64
	Exemplars         []*Exemplar
	Flags             DataPointFlags
	Min               *float64
	Max               *float64
}

func (x *HistogramDataPoint) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = common.AppendAttributes(b, 9, x.Attributes)
	if x.StartTimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 2, x.StartTimeUnixNano)
	}
	if x.TimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 3, x.TimeUnixNano)
	}
	if x.Count != 0 {
		b = wire.AppendFixed64(b, 4, x.Count)
	}
	if x.Sum != nil {
		b = wire.AppendDouble(b, 5, *x.Sum)
	}
	b = wire.AppendPackedFixed64(b, 6, x.BucketCounts)
	b = wire.AppendPackedDouble(b, 7, x.ExplicitBounds)
	b = wire.AppendRepeated(b, 8, x.Exemplars)
	if x.Flags != 0 {
		b = wire.AppendVarint(b, 10, uint64(x.Flags))
	}
	if x.Min != nil {
		b = wire.AppendDouble(b, 11, *x.Min)
	}
	if x.Max != nil {
		b = wire.AppendDouble(b, 12, *x.Max)
	}
	return b
}

var histogramDataPointFields = wire.Fields{
	2:  wire.Fixed64Type,
	3:  wire.Fixed64Type,
	4:  wire.Fixed64Type,
	5:  wire.Fixed64Type,
	6:  wire.Packed(wire.Fixed64Type),
	7:  wire.Packed(wire.Fixed64Type),
	8:  wire.BytesType,
	9:  wire.BytesType,
	10: wire.VarintType,
	11: wire.Fixed64Type,
	12: wire.Fixed64Type,
}

func (x *HistogramDataPoint) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, histogramDataPointFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 2:
			x.StartTimeUnixNano, err = d.Fixed64()
		case 3:
			x.TimeUnixNano, err = d.Fixed64()
		case 4:
			x.Count, err = d.Fixed64()
		case 5:
			x.Sum, err = readOptionalDouble(&d)
		case 6:
			x.BucketCounts, err = d.Fixed64s(x.BucketCounts)
		case 7:
			x.ExplicitBounds, err = d.Doubles(x.ExplicitBounds)
		case 8:
			x.Exemplars, err = wire.ReadRepeated(&d, x.Exemplars)
		case 9:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
		case 10:
			var v uint32
			v, err = d.Uint32()
			x.Flags = DataPointFlags(v)
		case 11:
			x.Min, err = readOptionalDouble(&d)
		case 12:
			x.Max, err = readOptionalDouble(&d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *HistogramDataPoint) Validate() error {
	if err := common.ValidateAttributes(x.Attributes); err != nil {
		return err
	}
	return validation.Each(x.Exemplars)
}

func (x *HistogramDataPoint) Clone() *HistogramDataPoint {
	if x == nil {
		return nil
	}
	return &HistogramDataPoint{
		Attributes:        common.CloneAttributes(x.Attributes),
		StartTimeUnixNano: x.StartTimeUnixNano,
		TimeUnixNano:      x.TimeUnixNano,
		Count:             x.Count,
		Sum:               cloneDouble(x.Sum),
		BucketCounts:      slices.Clone(x.BucketCounts),
		ExplicitBounds:    slices.Clone(x.ExplicitBounds),
		Exemplars:         cloneEach(x.Exemplars, (*Exemplar).Clone),
		Flags:             x.Flags,
		Min:               cloneDouble(x.Min),
		Max:               cloneDouble(x.Max),
	}
}

// ExponentialHistogramDataPoint is a single data point in a timeseries that
// describes the time-varying values of an ExponentialHistogram.
type ExponentialHistogramDataPoint struct {
	Attributes        []*common.KeyValue
	StartTimeUnixNano uint64
	TimeUnixNano      uint64
	Count             uint64
	Sum               *float64
	Scale             int32
	ZeroCount         uint64
	Positive          *Buckets
	Negative          *Buckets
	Flags             DataPointFlags
	Exemplars         []*Exemplar
	Min               *float64
	Max               *float64
	ZeroThreshold     float64
}

func (x *ExponentialHistogramDataPoint) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = common.AppendAttributes(b, 1, x.Attributes)
	if x.StartTimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 2, x.StartTimeUnixNano)
	}
	if x.TimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 3, x.TimeUnixNano)
	}
	if x.Count != 0 {
		b = wire.AppendFixed64(b, 4, x.Count)
	}
	if x.Sum != nil {
		b = wire.AppendDouble(b, 5, *x.Sum)
	}
	if x.Scale != 0 {
		b = wire.AppendSint32(b, 6, x.Scale)
	}
	if x.ZeroCount != 0 {
		b = wire.AppendFixed64(b, 7, x.ZeroCount)
	}
	if x.Positive != nil {
		b = wire.AppendMessage(b, 8, x.Positive)
	}
	if x.Negative != nil {
		b = wire.AppendMessage(b, 9, x.Negative)
	}
	if x.Flags != 0 {
		b = wire.AppendVarint(b, 10, uint64(x.Flags))
	}
	b = wire.AppendRepeated(b, 11, x.Exemplars)
	if x.Min != nil {
		b = wire.AppendDouble(b, 12, *x.Min)
	}
	if x.Max != nil {
		b = wire.AppendDouble(b, 13, *x.Max)
	}
	if math.Float64bits(x.ZeroThreshold) != 0 {
		b = wire.AppendDouble(b, 14, x.ZeroThreshold)
	}
	return b
}

var exponentialHistogramDataPointFields = wire.Fields{
	1:  wire.BytesType,
	2:  wire.Fixed64Type,
	3:  wire.Fixed64Type,
	4:  wire.Fixed64Type,
	5:  wire.Fixed64Type,
	6:  wire.VarintType,
	7:  wire.Fixed64Type,
	8:  wire.BytesType,
	9:  wire.BytesType,
	10: wire.VarintType,
	11: wire.BytesType,
	12: wire.Fixed64Type,
	13: wire.Fixed64Type,
	14: wire.Fixed64Type,
}

func (x *ExponentialHistogramDataPoint) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, exponentialHistogramDataPointFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
		case 2:
			x.StartTimeUnixNano, err = d.Fixed64()
		case 3:
			x.TimeUnixNano, err = d.Fixed64()
		case 4:
			x.Count, err = d.Fixed64()
		case 5:
			x.Sum, err = readOptionalDouble(&d)
		case 6:
			x.Scale, err = d.Sint32()
		case 7:
			x.ZeroCount, err = d.Fixed64()
		case 8:
			if x.Positive == nil {
				x.Positive = &Buckets{}
			}
			err = d.Message(x.Positive)
		case 9:
			if x.Negative == nil {
				x.Negative = &Buckets{}
			}
			err = d.Message(x.Negative)
		case 10:
			var v uint32
			v, err = d.Uint32()
			x.Flags = DataPointFlags(v)
		case 11:
			x.Exemplars, err = wire.ReadRepeated(&d, x.Exemplars)
		case 12:
			x.Min, err = readOptionalDouble(&d)
		case 13:
			x.Max, err = readOptionalDouble(&d)
		case 14:
			x.ZeroThreshold, err = d.Double()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ExponentialHistogramDataPoint) Validate() error {
	if err := common.ValidateAttributes(x.Attributes); err != nil {
		return err
	}
	if x.Positive != nil {
		if err := x.Positive.Validate(); err != nil {
			return err
		}
	}
	if x.Negative != nil {
		if err := x.Negative.Validate(); err != nil {
			return err
		}
	}
	return validation.Each(x.Exemplars)
}

func (x *ExponentialHistogramDataPoint) Clone() *ExponentialHistogramDataPoint {
	if x == nil {
		return nil
	}
	return &ExponentialHistogramDataPoint{
		Attributes:        common.CloneAttributes(x.Attributes),
		StartTimeUnixNano: x.StartTimeUnixNano,
		TimeUnixNano:      x.TimeUnixNano,
		Count:             x.Count,
		Sum:               cloneDouble(x.Sum),
		Scale:             x.Scale,
		ZeroCount:         x.ZeroCount,
		Positive:          x.Positive.Clone(),
		Negative:          x.Negative.Clone(),
		Flags:             x.Flags,
		Exemplars:         cloneEach(x.Exemplars, (*Exemplar).Clone),
		Min:               cloneDouble(x.Min),
		Max:               cloneDouble(x.Max),
		ZeroThreshold:     x.ZeroThreshold,
	}
}

// Buckets are a set of bucket counts, encoded in a contiguous array of
// counts starting at Offset.
type Buckets struct {
	Offset       int32
	BucketCounts []uint64
}

// MarshalAppend implements [wire.Message]. Bucket counts are written one tag
// per element.
func (x *Buckets) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Offset != 0 {
		b = wire.AppendSint32(b, 1, x.Offset)
	}
	for _, v := range x.BucketCounts {
		b = wire.AppendVarint(b, 2, v)
	}
	return b
}

var bucketsFields = wire.Fields{1: wire.VarintType, 2: wire.Packed(wire.VarintType)}

func (x *Buckets) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, bucketsFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Offset, err = d.Sint32()
		case 2:
			x.BucketCounts, err = d.Uint64s(x.BucketCounts)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Buckets) Validate() error { return nil }

func (x *Buckets) Clone() *Buckets {
	if x == nil {
		return nil
	}
	return &Buckets{Offset: x.Offset, BucketCounts: slices.Clone(x.BucketCounts)}
}

// SummaryDataPoint is a single data point in a timeseries that describes the
// time-varying values of a Summary metric.
type SummaryDataPoint struct {
	Attributes        []*common.KeyValue
	StartTimeUnixNano uint64
	TimeUnixNano      uint64
	Count             uint64
	Sum               float64
	QuantileValues    []*ValueAtQuantile
	Flags             DataPointFlags
}

func (x *SummaryDataPoint) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = common.AppendAttributes(b, 7, x.Attributes)
	if x.StartTimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 2, x.StartTimeUnixNano)
	}
	if x.TimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 3, x.TimeUnixNano)
	}
	if x.Count != 0 {
		b = wire.AppendFixed64(b, 4, x.Count)
	}
	if math.Float64bits(x.Sum) != 0 {
		b = wire.AppendDouble(b, 5, x.Sum)
	}
	b = wire.AppendRepeated(b, 6, x.QuantileValues)
	if x.Flags != 0 {
		b = wire.AppendVarint(b, 8, uint64(x.Flags))
	}
	return b
}

var summaryDataPointFields = wire.Fields{
	2: wire.Fixed64Type,
	3: wire.Fixed64Type,
	4: wire.Fixed64Type,
	5: wire.Fixed64Type,
	6: wire.BytesType,
	7: wire.BytesType,
	8: wire.VarintType,
}

func (x *SummaryDataPoint) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, summaryDataPointFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 2:
			x.StartTimeUnixNano, err = d.Fixed64()
		case 3:
			x.TimeUnixNano, err = d.Fixed64()
		case 4:
			x.Count, err = d.Fixed64()
		case 5:
			x.Sum, err = d.Double()
		case 6:
			x.QuantileValues, err = wire.ReadRepeated(&d, x.QuantileValues)
		case 7:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
		case 8:
			var v uint32
			v, err = d.Uint32()
			x.Flags = DataPointFlags(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *SummaryDataPoint) Validate() error {
	if err := common.ValidateAttributes(x.Attributes); err != nil {
		return err
	}
	return validation.Each(x.QuantileValues)
}

func (x *SummaryDataPoint) Clone() *SummaryDataPoint {
	if x == nil {
		return nil
	}
	return &SummaryDataPoint{
		Attributes:        common.CloneAttributes(x.Attributes),
		StartTimeUnixNano: x.StartTimeUnixNano,
		TimeUnixNano:      x.TimeUnixNano,
		Count:             x.Count,
		Sum:               x.Sum,
		QuantileValues:    cloneEach(x.QuantileValues, (*ValueAtQuantile).Clone),
		Flags:             x.Flags,
	}
}

// ValueAtQuantile represents the value at a given quantile of a
// distribution.
type ValueAtQuantile struct {
	Quantile float64
	Value    float64
}

func (x *ValueAtQuantile) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if math.Float64bits(x.Quantile) != 0 {
		b = wire.AppendDouble(b, 1, x.Quantile)
	}
	if math.Float64bits(x.Value) != 0 {
		b = wire.AppendDouble(b, 2, x.Value)
	}
	return b
}

var valueAtQuantileFields = wire.Fields{1: wire.Fixed64Type, 2: wire.Fixed64Type}

func (x *ValueAtQuantile) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, valueAtQuantileFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Quantile, err = d.Double()
		case 2:
			x.Value, err = d.Double()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ValueAtQuantile) Validate() error { return nil }

func (x *ValueAtQuantile) Clone() *ValueAtQuantile {
	if x == nil {
		return nil
	}
	v := *x
	return &v
}

func readOptionalDouble(d *wire.Decoder) (*float64, error) {
	v, err := d.Double()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func cloneDouble(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
