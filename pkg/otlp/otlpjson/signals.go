package otlpjson

import (
	"io"

	"github.com/grafana/otlpcodec/pkg/otlp/logs"
	"github.com/grafana/otlpcodec/pkg/otlp/trace"
)

// WriteLogs writes req to w as OTLP/JSON followed by a newline.
func WriteLogs(w io.Writer, req *logs.ExportLogsServiceRequest) error {
	return write(w, func(w *writer) {
		w.objectStart()
		w.array("resourceLogs", len(req.ResourceLogs), func(i int) {
			rl := req.ResourceLogs[i]
			w.objectStart()
			w.resource(rl.Resource)
			w.array("scopeLogs", len(rl.ScopeLogs), func(i int) {
				sl := rl.ScopeLogs[i]
				w.objectStart()
				w.scope(sl.Scope)
				w.array("logRecords", len(sl.LogRecords), func(i int) { w.logRecord(sl.LogRecords[i]) })
				w.str("schemaUrl", sl.SchemaURL)
				w.objectEnd()
			})
			w.str("schemaUrl", rl.SchemaURL)
			w.objectEnd()
		})
		w.objectEnd()
	})
}

func (w *writer) logRecord(lr *logs.LogRecord) {
	w.objectStart()
	w.u64("timeUnixNano", lr.TimeUnixNano)
	w.u64("observedTimeUnixNano", lr.ObservedTimeUnixNano)
	w.i32("severityNumber", int32(lr.SeverityNumber))
	w.str("severityText", lr.SeverityText)
	if lr.Body != nil {
		w.field("body")
		w.anyValue(lr.Body)
	}
	w.attributes("attributes", lr.Attributes)
	w.u32("droppedAttributesCount", lr.DroppedAttributesCount)
	w.u32("flags", uint32(lr.Flags))
	w.hexID("traceId", lr.TraceID)
	w.hexID("spanId", lr.SpanID)
	w.str("eventName", lr.EventName)
	w.objectEnd()
}

// WriteTraces writes req to w as OTLP/JSON followed by a newline.
func WriteTraces(w io.Writer, req *trace.ExportTraceServiceRequest) error {
	return write(w, func(w *writer) {
		w.objectStart()
		w.array("resourceSpans", len(req.ResourceSpans), func(i int) {
			rs := req.ResourceSpans[i]
			w.objectStart()
			w.resource(rs.Resource)
			w.array("scopeSpans", len(rs.ScopeSpans), func(i int) {
				ss := rs.ScopeSpans[i]
				w.objectStart()
				w.scope(ss.Scope)
				w.array("spans", len(ss.Spans), func(i int) { w.span(ss.Spans[i]) })
				w.str("schemaUrl", ss.SchemaURL)
				w.objectEnd()
			})
			w.str("schemaUrl", rs.SchemaURL)
			w.objectEnd()
		})
		w.objectEnd()
	})
}

func (w *writer) span(s *trace.Span) {
	w.objectStart()
	w.hexID("traceId", s.TraceID)
	w.hexID("spanId", s.SpanID)
	w.str("traceState", s.TraceState)
	w.hexID("parentSpanId", s.ParentSpanID)
	w.u32("flags", uint32(s.Flags))
	w.str("name", s.Name)
	w.i32("kind", int32(s.Kind))
	w.u64("startTimeUnixNano", s.StartTimeUnixNano)
	w.u64("endTimeUnixNano", s.EndTimeUnixNano)
	w.attributes("attributes", s.Attributes)
	w.u32("droppedAttributesCount", s.DroppedAttributesCount)
	w.array("events", len(s.Events), func(i int) {
		e := s.Events[i]
		w.objectStart()
		w.u64("timeUnixNano", e.TimeUnixNano)
		w.str("name", e.Name)
		w.attributes("attributes", e.Attributes)
		w.u32("droppedAttributesCount", e.DroppedAttributesCount)
		w.objectEnd()
	})
	w.u32("droppedEventsCount", s.DroppedEventsCount)
	w.array("links", len(s.Links), func(i int) {
		l := s.Links[i]
		w.objectStart()
		w.hexID("traceId", l.TraceID)
		w.hexID("spanId", l.SpanID)
		w.str("traceState", l.TraceState)
		w.attributes("attributes", l.Attributes)
		w.u32("droppedAttributesCount", l.DroppedAttributesCount)
		w.u32("flags", uint32(l.Flags))
		w.objectEnd()
	})
	w.u32("droppedLinksCount", s.DroppedLinksCount)
	if s.Status != nil {
		w.field("status")
		w.objectStart()
		w.str("message", s.Status.Message)
		w.i32("code", int32(s.Status.Code))
		w.objectEnd()
	}
	w.objectEnd()
}
