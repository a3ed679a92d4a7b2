package metrics

import (
	"fmt"
	"strings"

	"github.com/grafana/otlpcodec/pkg/otlp/common"
	"github.com/grafana/otlpcodec/pkg/otlp/validation"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// AggregationTemporality defines how a metric aggregator reports aggregated
// values.
type AggregationTemporality int32

const (
	AggregationTemporalityUnspecified AggregationTemporality = 0
	AggregationTemporalityDelta       AggregationTemporality = 1
	AggregationTemporalityCumulative  AggregationTemporality = 2
)

func (t AggregationTemporality) String() string {
	switch t {
	case AggregationTemporalityUnspecified:
		return "AGGREGATION_TEMPORALITY_UNSPECIFIED"
	case AggregationTemporalityDelta:
		return "AGGREGATION_TEMPORALITY_DELTA"
	case AggregationTemporalityCumulative:
		return "AGGREGATION_TEMPORALITY_CUMULATIVE"
	}
	return fmt.Sprintf("AggregationTemporality(%d)", int32(t))
}

// Data is the union held by a [Metric]. It is implemented by [*Gauge],
// [*Sum], [*Histogram], [*ExponentialHistogram] and [*Summary].
type Data interface {
	validation.Validator
	isMetricData()
	dataPointCount() int
}

func (*Gauge) isMetricData()                {}
func (*Sum) isMetricData()                  {}
func (*Histogram) isMetricData()            {}
func (*ExponentialHistogram) isMetricData() {}
func (*Summary) isMetricData()              {}

// Metric represents one metric stream: its descriptive fields and exactly one
// kind of data, or none.
type Metric struct {
	Name        string
	Description string
	Unit        string
	Data        Data

	// Additional metadata attributes that describe the metric.
	Metadata []*common.KeyValue
}

// MarshalAppend implements [wire.Message]. The data variant is written last.
func (x *Metric) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Name != "" {
		b = wire.AppendString(b, 1, x.Name)
	}
	if x.Description != "" {
		b = wire.AppendString(b, 2, x.Description)
	}
	if x.Unit != "" {
		b = wire.AppendString(b, 3, x.Unit)
	}
	b = common.AppendAttributes(b, 12, x.Metadata)

	switch v := x.Data.(type) {
	case nil:
	case *Gauge:
		b = wire.AppendMessage(b, 5, v)
	case *Sum:
		b = wire.AppendMessage(b, 7, v)
	case *Histogram:
		b = wire.AppendMessage(b, 9, v)
	case *ExponentialHistogram:
		b = wire.AppendMessage(b, 10, v)
	case *Summary:
		b = wire.AppendMessage(b, 11, v)
	default:
		panic(fmt.Sprintf("metrics: unexpected metric data type %T", v))
	}
	return b
}

var metricFields = wire.Fields{
	1:  wire.BytesType,
	2:  wire.BytesType,
	3:  wire.BytesType,
	5:  wire.BytesType,
	7:  wire.BytesType,
	9:  wire.BytesType,
	10: wire.BytesType,
	11: wire.BytesType,
	12: wire.BytesType,
}

func (x *Metric) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, metricFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.Name, err = d.Text()
		case 2:
			x.Description, err = d.Text()
		case 3:
			x.Unit, err = d.Text()
		case 5:
			x.Data, err = readData[Gauge](&d, x.Data)
		case 7:
			x.Data, err = readData[Sum](&d, x.Data)
		case 9:
			x.Data, err = readData[Histogram](&d, x.Data)
		case 10:
			x.Data, err = readData[ExponentialHistogram](&d, x.Data)
		case 11:
			x.Data, err = readData[Summary](&d, x.Data)
		case 12:
			x.Metadata, err = common.ReadAttribute(&d, x.Metadata)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readData decodes the current field into cur when it already holds the same
// variant, or into a new value otherwise.
func readData[T any, P interface {
	*T
	Data
	wire.Message
}](d *wire.Decoder, cur Data) (Data, error) {
	m, ok := cur.(P)
	if !ok || m == nil {
		m = P(new(T))
	}
	if err := d.Message(m); err != nil {
		return cur, err
	}
	return m, nil
}

// Validate validates the metadata and data of x, then checks the metric
// name. The unit is not checked.
func (x *Metric) Validate() error {
	if err := common.ValidateAttributes(x.Metadata); err != nil {
		return err
	}
	switch v := x.Data.(type) {
	case nil:
	case *Gauge, *Sum, *Histogram, *ExponentialHistogram, *Summary:
		if err := v.Validate(); err != nil {
			return err
		}
	default:
		panic(fmt.Sprintf("metrics: unexpected metric data type %T", v))
	}
	return validation.MetricName(x.Name)
}

func (x *Metric) Clone() *Metric {
	if x == nil {
		return nil
	}
	out := &Metric{
		Name:        strings.Clone(x.Name),
		Description: strings.Clone(x.Description),
		Unit:        strings.Clone(x.Unit),
		Metadata:    common.CloneAttributes(x.Metadata),
	}
	switch v := x.Data.(type) {
	case *Gauge:
		out.Data = v.Clone()
	case *Sum:
		out.Data = v.Clone()
	case *Histogram:
		out.Data = v.Clone()
	case *ExponentialHistogram:
		out.Data = v.Clone()
	case *Summary:
		out.Data = v.Clone()
	}
	return out
}

// DataPointCount returns the number of data points held by x.
func (x *Metric) DataPointCount() int {
	if x.Data == nil {
		return 0
	}
	return x.Data.dataPointCount()
}

// Gauge represents the type of a scalar metric that always exports the
// "current value" for every data point.
type Gauge struct {
	DataPoints []*NumberDataPoint
}

func (x *Gauge) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, x.DataPoints)
}

var gaugeFields = wire.Fields{1: wire.BytesType}

func (x *Gauge) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, gaugeFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.DataPoints, err = wire.ReadRepeated(&d, x.DataPoints)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Gauge) Validate() error { return validation.Each(x.DataPoints) }

func (x *Gauge) Clone() *Gauge {
	if x == nil {
		return nil
	}
	return &Gauge{DataPoints: cloneEach(x.DataPoints, (*NumberDataPoint).Clone)}
}

func (x *Gauge) dataPointCount() int { return len(x.DataPoints) }

// Sum represents the type of a scalar metric that is calculated as a sum of
// all reported measurements over a time interval.
type Sum struct {
	DataPoints             []*NumberDataPoint
	AggregationTemporality AggregationTemporality
	IsMonotonic            bool
}

func (x *Sum) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = wire.AppendRepeated(b, 1, x.DataPoints)
	if x.AggregationTemporality != 0 {
		b = wire.AppendInt32(b, 2, int32(x.AggregationTemporality))
	}
	if x.IsMonotonic {
		b = wire.AppendBool(b, 3, true)
	}
	return b
}

var sumFields = wire.Fields{1: wire.BytesType, 2: wire.VarintType, 3: wire.VarintType}

func (x *Sum) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, sumFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.DataPoints, err = wire.ReadRepeated(&d, x.DataPoints)
		case 2:
			var v int32
			v, err = d.Int32()
			x.AggregationTemporality = AggregationTemporality(v)
		case 3:
			x.IsMonotonic, err = d.Bool()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Sum) Validate() error { return validation.Each(x.DataPoints) }

func (x *Sum) Clone() *Sum {
	if x == nil {
		return nil
	}
	return &Sum{
		DataPoints:             cloneEach(x.DataPoints, (*NumberDataPoint).Clone),
		AggregationTemporality: x.AggregationTemporality,
		IsMonotonic:            x.IsMonotonic,
	}
}

func (x *Sum) dataPointCount() int { return len(x.DataPoints) }

// Histogram represents the type of a metric that is calculated by aggregating
// as a Histogram of all reported measurements over a time interval.
type Histogram struct {
	DataPoints             []*HistogramDataPoint
	AggregationTemporality AggregationTemporality
}

func (x *Histogram) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = wire.AppendRepeated(b, 1, x.DataPoints)
	if x.AggregationTemporality != 0 {
		b = wire.AppendInt32(b, 2, int32(x.AggregationTemporality))
	}
	return b
}

var histogramFields = wire.Fields{1: wire.BytesType, 2: wire.VarintType}

func (x *Histogram) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, histogramFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.DataPoints, err = wire.ReadRepeated(&d, x.DataPoints)
		case 2:
			var v int32
			v, err = d.Int32()
			x.AggregationTemporality = AggregationTemporality(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Histogram) Validate() error { return validation.Each(x.DataPoints) }

func (x *Histogram) Clone() *Histogram {
	if x == nil {
		return nil
	}
	return &Histogram{
		DataPoints:             cloneEach(x.DataPoints, (*HistogramDataPoint).Clone),
		AggregationTemporality: x.AggregationTemporality,
	}
}

func (x *Histogram) dataPointCount() int { return len(x.DataPoints) }

// ExponentialHistogram represents the type of a metric that is calculated by
// aggregating as an ExponentialHistogram of all reported double measurements
// over a time interval.
type ExponentialHistogram struct {
	DataPoints             []*ExponentialHistogramDataPoint
	AggregationTemporality AggregationTemporality
}

func (x *ExponentialHistogram) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	b = wire.AppendRepeated(b, 1, x.DataPoints)
	if x.AggregationTemporality != 0 {
		b = wire.AppendInt32(b, 2, int32(x.AggregationTemporality))
	}
	return b
}

var exponentialHistogramFields = wire.Fields{1: wire.BytesType, 2: wire.VarintType}

func (x *ExponentialHistogram) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, exponentialHistogramFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.DataPoints, err = wire.ReadRepeated(&d, x.DataPoints)
		case 2:
			var v int32
			v, err = d.Int32()
			x.AggregationTemporality = AggregationTemporality(v)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ExponentialHistogram) Validate() error { return validation.Each(x.DataPoints) }

func (x *ExponentialHistogram) Clone() *ExponentialHistogram {
	if x == nil {
		return nil
	}
	return &ExponentialHistogram{
		DataPoints:             cloneEach(x.DataPoints, (*ExponentialHistogramDataPoint).Clone),
		AggregationTemporality: x.AggregationTemporality,
	}
}

func (x *ExponentialHistogram) dataPointCount() int { return len(x.DataPoints) }

// Summary metric data are used to convey quantile summaries, a Prometheus
// (see: https://prometheus.io/docs/concepts/metric_types/#summary) and
// OpenMetrics data type.
type Summary struct {
	DataPoints []*SummaryDataPoint
}

func (x *Summary) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, x.DataPoints)
}

var summaryFields = wire.Fields{1: wire.BytesType}

func (x *Summary) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, summaryFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.DataPoints, err = wire.ReadRepeated(&d, x.DataPoints)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Summary) Validate() error { return validation.Each(x.DataPoints) }

func (x *Summary) Clone() *Summary {
	if x == nil {
		return nil
	}
	return &Summary{DataPoints: cloneEach(x.DataPoints, (*SummaryDataPoint).Clone)}
}

func (x *Summary) dataPointCount() int { return len(x.DataPoints) }

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, clone(v))
	}
	return out
}
