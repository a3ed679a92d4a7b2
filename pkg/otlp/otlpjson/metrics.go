package otlpjson

import (
	"io"
	"strconv"

	"github.com/grafana/otlpcodec/pkg/otlp/metrics"
)

// WriteMetrics writes req to w as OTLP/JSON followed by a newline.
func WriteMetrics(w io.Writer, req *metrics.ExportMetricsServiceRequest) error {
	return write(w, func(w *writer) {
		w.objectStart()
		w.array("resourceMetrics", len(req.ResourceMetrics), func(i int) {
			rm := req.ResourceMetrics[i]
			w.objectStart()
			w.resource(rm.Resource)
			w.array("scopeMetrics", len(rm.ScopeMetrics), func(i int) {
				sm := rm.ScopeMetrics[i]
				w.objectStart()
				w.scope(sm.Scope)
				w.array("metrics", len(sm.Metrics), func(i int) { w.metric(sm.Metrics[i]) })
				w.str("schemaUrl", sm.SchemaURL)
				w.objectEnd()
			})
			w.str("schemaUrl", rm.SchemaURL)
			w.objectEnd()
		})
		w.objectEnd()
	})
}

func (w *writer) metric(m *metrics.Metric) {
	w.objectStart()
	w.str("name", m.Name)
	w.str("description", m.Description)
	w.str("unit", m.Unit)
	w.attributes("metadata", m.Metadata)

	switch d := m.Data.(type) {
	case nil:
	case *metrics.Gauge:
		w.field("gauge")
		w.objectStart()
		w.array("dataPoints", len(d.DataPoints), func(i int) { w.numberDataPoint(d.DataPoints[i]) })
		w.objectEnd()
	case *metrics.Sum:
		w.field("sum")
		w.objectStart()
		w.array("dataPoints", len(d.DataPoints), func(i int) { w.numberDataPoint(d.DataPoints[i]) })
		w.i32("aggregationTemporality", int32(d.AggregationTemporality))
		w.boolean("isMonotonic", d.IsMonotonic)
		w.objectEnd()
	case *metrics.Histogram:
		w.field("histogram")
		w.objectStart()
		w.array("dataPoints", len(d.DataPoints), func(i int) { w.histogramDataPoint(d.DataPoints[i]) })
		w.i32("aggregationTemporality", int32(d.AggregationTemporality))
		w.objectEnd()
	case *metrics.ExponentialHistogram:
		w.field("exponentialHistogram")
		w.objectStart()
		w.array("dataPoints", len(d.DataPoints), func(i int) { w.expHistogramDataPoint(d.DataPoints[i]) })
		w.i32("aggregationTemporality", int32(d.AggregationTemporality))
		w.objectEnd()
	case *metrics.Summary:
		w.field("summary")
		w.objectStart()
		w.array("dataPoints", len(d.DataPoints), func(i int) { w.summaryDataPoint(d.DataPoints[i]) })
		w.objectEnd()
	}
	w.objectEnd()
}

func (w *writer) numberValue(v metrics.NumberValue) {
	switch v := v.(type) {
	case metrics.AsDouble:
		w.field("asDouble")
		w.double(float64(v))
	case metrics.AsInt:
		w.field("asInt")
		w.WriteString(strconv.FormatInt(int64(v), 10))
	}
}

func (w *writer) exemplars(es []*metrics.Exemplar) {
	w.array("exemplars", len(es), func(i int) {
		e := es[i]
		w.objectStart()
		w.attributes("filteredAttributes", e.FilteredAttributes)
		w.u64("timeUnixNano", e.TimeUnixNano)
		w.numberValue(e.Value)
		w.hexID("spanId", e.SpanID)
		w.hexID("traceId", e.TraceID)
		w.objectEnd()
	})
}

func (w *writer) numberDataPoint(dp *metrics.NumberDataPoint) {
	w.objectStart()
	w.attributes("attributes", dp.Attributes)
	w.u64("startTimeUnixNano", dp.StartTimeUnixNano)
	w.u64("timeUnixNano", dp.TimeUnixNano)
	w.numberValue(dp.Value)
	w.exemplars(dp.Exemplars)
	w.u32("flags", uint32(dp.Flags))
	w.objectEnd()
}

func (w *writer) uint64s(name string, vs []uint64) {
	w.array(name, len(vs), func(i int) { w.WriteString(strconv.FormatUint(vs[i], 10)) })
}

func (w *writer) histogramDataPoint(dp *metrics.HistogramDataPoint) {
	w.objectStart()
	w.attributes("attributes", dp.Attributes)
	w.u64("startTimeUnixNano", dp.StartTimeUnixNano)
	w.u64("timeUnixNano", dp.TimeUnixNano)
	w.u64("count", dp.Count)
	w.optionalF64("sum", dp.Sum)
	w.uint64s("bucketCounts", dp.BucketCounts)
	w.array("explicitBounds", len(dp.ExplicitBounds), func(i int) { w.double(dp.ExplicitBounds[i]) })
	w.exemplars(dp.Exemplars)
	w.u32("flags", uint32(dp.Flags))
	w.optionalF64("min", dp.Min)
	w.optionalF64("max", dp.Max)
	w.objectEnd()
}

func (w *writer) buckets(name string, b *metrics.Buckets) {
	if b == nil {
		return
	}
	w.field(name)
	w.objectStart()
	w.i32("offset", b.Offset)
	w.uint64s("bucketCounts", b.BucketCounts)
	w.objectEnd()
}

func (w *writer) expHistogramDataPoint(dp *metrics.ExponentialHistogramDataPoint) {
	w.objectStart()
	w.attributes("attributes", dp.Attributes)
	w.u64("startTimeUnixNano", dp.StartTimeUnixNano)
	w.u64("timeUnixNano", dp.TimeUnixNano)
	w.u64("count", dp.Count)
	w.optionalF64("sum", dp.Sum)
	w.i32("scale", dp.Scale)
	w.u64("zeroCount", dp.ZeroCount)
	w.buckets("positive", dp.Positive)
	w.buckets("negative", dp.Negative)
	w.u32("flags", uint32(dp.Flags))
	w.exemplars(dp.Exemplars)
	w.optionalF64("min", dp.Min)
	w.optionalF64("max", dp.Max)
	w.f64("zeroThreshold", dp.ZeroThreshold)
	w.objectEnd()
}

func (w *writer) summaryDataPoint(dp *metrics.SummaryDataPoint) {
	w.objectStart()
	w.attributes("attributes", dp.Attributes)
	w.u64("startTimeUnixNano", dp.StartTimeUnixNano)
	w.u64("timeUnixNano", dp.TimeUnixNano)
	w.u64("count", dp.Count)
	w.f64("sum", dp.Sum)
	w.array("quantileValues", len(dp.QuantileValues), func(i int) {
		q := dp.QuantileValues[i]
		w.objectStart()
		w.f64("quantile", q.Quantile)
		w.f64("value", q.Value)
		w.objectEnd()
	})
	w.u32("flags", uint32(dp.Flags))
	w.objectEnd()
}
