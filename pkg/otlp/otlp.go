// Package otlp dispatches OTLP export request bodies to the codec of their
// signal.
package otlp

import (
	"fmt"
	"strings"

	"github.com/grafana/otlpcodec/pkg/otlp/logs"
	"github.com/grafana/otlpcodec/pkg/otlp/metrics"
	"github.com/grafana/otlpcodec/pkg/otlp/trace"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// Signal is the kind of telemetry carried by an export request.
type Signal int

const (
	SignalMetrics Signal = iota
	SignalLogs
	SignalTraces
)

// Signals lists every supported signal.
var Signals = []Signal{SignalMetrics, SignalLogs, SignalTraces}

func (s Signal) String() string {
	switch s {
	case SignalMetrics:
		return "metrics"
	case SignalLogs:
		return "logs"
	case SignalTraces:
		return "traces"
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

// ParseSignal parses a signal name. "trace" is accepted for traces.
func ParseSignal(s string) (Signal, error) {
	switch strings.ToLower(s) {
	case "metrics":
		return SignalMetrics, nil
	case "logs":
		return SignalLogs, nil
	case "traces", "trace":
		return SignalTraces, nil
	}
	return 0, fmt.Errorf("unknown signal %q", s)
}

// Request is a decoded export request of any signal.
type Request interface {
	wire.Message
	Validate() error
}

// New returns an empty request for the signal.
func New(s Signal) (Request, error) {
	switch s {
	case SignalMetrics:
		return &metrics.ExportMetricsServiceRequest{}, nil
	case SignalLogs:
		return &logs.ExportLogsServiceRequest{}, nil
	case SignalTraces:
		return &trace.ExportTraceServiceRequest{}, nil
	}
	return nil, fmt.Errorf("unsupported signal %v", s)
}

// Decode decodes b as an export request of the given signal.
func Decode(s Signal, b []byte) (Request, error) {
	var (
		req Request
		err error
	)
	switch s {
	case SignalMetrics:
		req, err = metrics.Decode(b)
	case SignalLogs:
		req, err = logs.Decode(b)
	case SignalTraces:
		req, err = trace.Decode(b)
	default:
		return nil, fmt.Errorf("unsupported signal %v", s)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ItemCount returns the number of data points, log records or spans in req.
func ItemCount(req Request) int {
	switch r := req.(type) {
	case *metrics.ExportMetricsServiceRequest:
		return r.DataPointCount()
	case *logs.ExportLogsServiceRequest:
		return r.LogRecordCount()
	case *trace.ExportTraceServiceRequest:
		return r.SpanCount()
	}
	return 0
}
