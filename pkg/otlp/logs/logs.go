// Package logs implements the OTLP ExportLogsServiceRequest message tree.
package logs

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/grafana/otlpcodec/pkg/otlp/common"
	"github.com/grafana/otlpcodec/pkg/otlp/validation"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// Decode decodes an ExportLogsServiceRequest from b. The result borrows from
// b.
func Decode(b []byte) (*ExportLogsServiceRequest, error) {
	req := &ExportLogsServiceRequest{}
	if err := req.Unmarshal(b); err != nil {
		return nil, errors.Wrap(err, "decoding logs export request")
	}
	return req, nil
}

// Encode returns the canonical encoding of req.
func Encode(req *ExportLogsServiceRequest) []byte {
	return req.MarshalAppend(nil)
}

// SeverityNumber is the normalized severity of a log record.
type SeverityNumber int32

const (
	SeverityNumberUnspecified SeverityNumber = iota
	SeverityNumberTrace
	SeverityNumberTrace2
	SeverityNumberTrace3
	SeverityNumberTrace4
	SeverityNumberDebug
	SeverityNumberDebug2
	SeverityNumberDebug3
	SeverityNumberDebug4
	SeverityNumberInfo
	SeverityNumberInfo2
	SeverityNumberInfo3
	SeverityNumberInfo4
	SeverityNumberWarn
	SeverityNumberWarn2
	SeverityNumberWarn3
	SeverityNumberWarn4
	SeverityNumberError
	SeverityNumberError2
	SeverityNumberError3
	SeverityNumberError4
	SeverityNumberFatal
	SeverityNumberFatal2
	SeverityNumberFatal3
	SeverityNumberFatal4
)

var severityRanges = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (s SeverityNumber) String() string {
	if s == SeverityNumberUnspecified {
		return "SEVERITY_NUMBER_UNSPECIFIED"
	}
	if s < SeverityNumberTrace || s > SeverityNumberFatal4 {
		return fmt.Sprintf("SeverityNumber(%d)", int32(s))
	}
	name := "SEVERITY_NUMBER_" + severityRanges[(s-1)/4]
	if step := (s - 1) % 4; step > 0 {
		name += strconv.Itoa(int(step) + 1)
	}
	return name
}

// LogRecordFlags are the bit flags of a log record. The low byte carries the
// W3C trace flags.
type LogRecordFlags uint32

const LogRecordFlagsTraceFlagsMask LogRecordFlags = 0x000000FF

// TraceFlags returns the W3C trace flags held in the low byte.
func (f LogRecordFlags) TraceFlags() uint8 {
	return uint8(f & LogRecordFlagsTraceFlagsMask)
}

// ExportLogsServiceRequest is the payload of an OTLP logs export.
type ExportLogsServiceRequest struct {
	ResourceLogs []*ResourceLogs
}

func (x *ExportLogsServiceRequest) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, x.ResourceLogs)
}

var exportLogsServiceRequestFields = wire.Fields{1: wire.BytesType}

func (x *ExportLogsServiceRequest) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, exportLogsServiceRequestFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.ResourceLogs, err = wire.ReadRepeated(&d, x.ResourceLogs)
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ExportLogsServiceRequest) Validate() error {
	return validation.Each(x.ResourceLogs)
}

func (x *ExportLogsServiceRequest) Clone() *ExportLogsServiceRequest {
	if x == nil {
		return nil
	}
	out := &ExportLogsServiceRequest{}
	for _, rl := range x.ResourceLogs {
		out.ResourceLogs = append(out.ResourceLogs, rl.Clone())
	}
	return out
}

// LogRecordCount returns the number of log records in the request.
func (x *ExportLogsServiceRequest) LogRecordCount() int {
	n := 0
	for _, rl := range x.ResourceLogs {
		for _, sl := range rl.ScopeLogs {
			n += len(sl.LogRecords)
		}
	}
	return n
}

// ResourceLogs is a collection of ScopeLogs from a Resource.
type ResourceLogs struct {
	Resource  *common.Resource
	ScopeLogs []*ScopeLogs
	SchemaURL string
}

func (x *ResourceLogs) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Resource != nil {
		b = wire.AppendMessage(b, 1, x.Resource)
	}
	b = wire.AppendRepeated(b, 2, x.ScopeLogs)
	if x.SchemaURL != "" {
		b = wire.AppendString(b, 3, x.SchemaURL)
	}
	return b
}

var resourceLogsFields = wire.Fields{1: wire.BytesType, 2: wire.BytesType, 3: wire.BytesType}

func (x *ResourceLogs) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, resourceLogsFields)
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
			x.ScopeLogs, err = wire.ReadRepeated(&d, x.ScopeLogs)
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

func (x *ResourceLogs) Validate() error {
	if x.Resource != nil {
		if err := x.Resource.Validate(); err != nil {
			return err
		}
	}
	if err := validation.Each(x.ScopeLogs); err != nil {
		return err
	}
	return validation.SchemaURL(x.SchemaURL)
}

func (x *ResourceLogs) Clone() *ResourceLogs {
	if x == nil {
		return nil
	}
	out := &ResourceLogs{
		Resource:  x.Resource.Clone(),
		SchemaURL: strings.Clone(x.SchemaURL),
	}
	for _, sl := range x.ScopeLogs {
		out.ScopeLogs = append(out.ScopeLogs, sl.Clone())
	}
	return out
}

// ScopeLogs is a collection of LogRecords produced by a Scope.
type ScopeLogs struct {
	Scope      *common.InstrumentationScope
	LogRecords []*LogRecord
	SchemaURL  string
}

func (x *ScopeLogs) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Scope != nil {
		b = wire.AppendMessage(b, 1, x.Scope)
	}
	b = wire.AppendRepeated(b, 2, x.LogRecords)
	if x.SchemaURL != "" {
		b = wire.AppendString(b, 3, x.SchemaURL)
	}
	return b
}

var scopeLogsFields = wire.Fields{1: wire.BytesType, 2: wire.BytesType, 3: wire.BytesType}

func (x *ScopeLogs) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, scopeLogsFields)
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
			x.LogRecords, err = wire.ReadRepeated(&d, x.LogRecords)
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

func (x *ScopeLogs) Validate() error {
	if x.Scope != nil {
		if err := x.Scope.Validate(); err != nil {
			return err
		}
	}
	if err := validation.Each(x.LogRecords); err != nil {
		return err
	}
	return validation.SchemaURL(x.SchemaURL)
}

func (x *ScopeLogs) Clone() *ScopeLogs {
	if x == nil {
		return nil
	}
	out := &ScopeLogs{
		Scope:     x.Scope.Clone(),
		SchemaURL: strings.Clone(x.SchemaURL),
	}
	for _, lr := range x.LogRecords {
		out.LogRecords = append(out.LogRecords, lr.Clone())
	}
	return out
}

// A LogRecord is a single log entry.
type LogRecord struct {
	TimeUnixNano         uint64
	ObservedTimeUnixNano uint64
	SeverityNumber       SeverityNumber
	// The severity text as known at the source, also known as log level.
	SeverityText           string
	Body                   *common.AnyValue
	Attributes             []*common.KeyValue
	DroppedAttributesCount uint32
	Flags                  LogRecordFlags
	TraceID                []byte
	SpanID                 []byte
	// Name of the event, when this record represents an event.
	EventName string
}

// MarshalAppend implements [wire.Message]. The observed timestamp directly
// follows the timestamp.
func (x *LogRecord) MarshalAppend(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.TimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 1, x.TimeUnixNano)
	}
	if x.ObservedTimeUnixNano != 0 {
		b = wire.AppendFixed64(b, 11, x.ObservedTimeUnixNano)
	}
	if x.SeverityNumber != 0 {
		b = wire.AppendInt32(b, 2, int32(x.SeverityNumber))
	}
	if x.SeverityText != "" {
		b = wire.AppendString(b, 3, x.SeverityText)
	}
	if x.Body != nil {
		b = wire.AppendMessage(b, 5, x.Body)
	}
	b = common.AppendAttributes(b, 6, x.Attributes)
	if x.DroppedAttributesCount != 0 {
		b = wire.AppendVarint(b, 7, uint64(x.DroppedAttributesCount))
	}
	if x.Flags != 0 {
		b = wire.AppendFixed32(b, 8, uint32(x.Flags))
	}
	if len(x.TraceID) > 0 {
		b = wire.AppendBytes(b, 9, x.TraceID)
	}
	if len(x.SpanID) > 0 {
		b = wire.AppendBytes(b, 10, x.SpanID)
	}
	if x.EventName != "" {
		b = wire.AppendString(b, 12, x.EventName)
	}
	return b
}

var logRecordFields = wire.Fields{
	1:  wire.Fixed64Type,
	2:  wire.VarintType,
	3:  wire.BytesType,
	5:  wire.BytesType,
	6:  wire.BytesType,
	7:  wire.VarintType,
	8:  wire.Fixed32Type,
	9:  wire.BytesType,
	10: wire.BytesType,
	11: wire.Fixed64Type,
	12: wire.BytesType,
}

func (x *LogRecord) Unmarshal(b []byte) error {
	d := wire.NewDecoder(b, logRecordFields)
	for !d.Done() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			x.TimeUnixNano, err = d.Fixed64()
		case 2:
			var v int32
			v, err = d.Int32()
			x.SeverityNumber = SeverityNumber(v)
		case 3:
			x.SeverityText, err = d.Text()
		case 5:
			if x.Body == nil {
				x.Body = &common.AnyValue{}
			}
			err = d.Message(x.Body)
		case 6:
			x.Attributes, err = common.ReadAttribute(&d, x.Attributes)
		case 7:
			x.DroppedAttributesCount, err = d.Uint32()
		case 8:
			var v uint32
			v, err = d.Fixed32()
			x.Flags = LogRecordFlags(v)
		case 9:
			x.TraceID, err = d.Bytes()
		case 10:
			x.SpanID, err = d.Bytes()
		case 11:
			x.ObservedTimeUnixNano, err = d.Fixed64()
		case 12:
			x.EventName, err = d.Text()
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the body and attributes.
func (x *LogRecord) Validate() error {
	if x.Body != nil {
		if err := x.Body.Validate(); err != nil {
			return err
		}
	}
	return common.ValidateAttributes(x.Attributes)
}

func (x *LogRecord) Clone() *LogRecord {
	if x == nil {
		return nil
	}
	return &LogRecord{
		TimeUnixNano:           x.TimeUnixNano,
		ObservedTimeUnixNano:   x.ObservedTimeUnixNano,
		SeverityNumber:         x.SeverityNumber,
		SeverityText:           strings.Clone(x.SeverityText),
		Body:                   x.Body.Clone(),
		Attributes:             common.CloneAttributes(x.Attributes),
		DroppedAttributesCount: x.DroppedAttributesCount,
		Flags:                  x.Flags,
		TraceID:                bytes.Clone(x.TraceID),
		SpanID:                 bytes.Clone(x.SpanID),
		EventName:              strings.Clone(x.EventName),
	}
}
