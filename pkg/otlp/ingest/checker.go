// Package ingest checks OTLP export request bodies as received over HTTP:
// it enforces size limits, decompresses, decodes and validates them, and
// records metrics about what it saw.
package ingest

import (
	"context"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/grafana/otlpcodec/pkg/otlp"
	"github.com/grafana/otlpcodec/pkg/otlp/validation"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

var (
	ErrTooLarge            = errors.New("request too large")
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
	ErrDecompression       = errors.New("decompression failed")
)

// Discard reasons reported by ReasonForError.
const (
	ReasonInvalidWireFormat   = "invalid_wire_format"
	ReasonInvalidSchemaURL    = "invalid_schema_url"
	ReasonInvalidMetricName   = "invalid_metric_name"
	ReasonTooLarge            = "too_large"
	ReasonUnsupportedEncoding = "unsupported_encoding"
	ReasonDecompression       = "decompression"
	ReasonOther               = "other"
)

// ReasonForError maps an error returned by Check to a discard reason.
func ReasonForError(err error) string {
	var (
		urlErr  *validation.URLError
		nameErr *validation.NameError
	)
	switch {
	case errors.Is(err, ErrTooLarge):
		return ReasonTooLarge
	case errors.Is(err, ErrUnsupportedEncoding):
		return ReasonUnsupportedEncoding
	case errors.Is(err, ErrDecompression):
		return ReasonDecompression
	case errors.Is(err, wire.ErrInvalidWireFormat):
		return ReasonInvalidWireFormat
	case errors.As(err, &urlErr):
		return ReasonInvalidSchemaURL
	case errors.As(err, &nameErr):
		return ReasonInvalidMetricName
	}
	return ReasonOther
}

// Stats describes a checked request body.
type Stats struct {
	Signal          otlp.Signal
	ContentEncoding string
	// BodySize is the size of the body as received.
	BodySize int64
	// DecodedSize is the size of the body after decompression.
	DecodedSize int64
	Items       int
	// Fingerprint is the xxhash of the decompressed body. It is only set when
	// Config.LogRequestFingerprint is enabled.
	Fingerprint uint64
}

// Result is the outcome of a successful decode.
type Result struct {
	Request otlp.Request
	// Body is the decompressed request body. Request aliases it.
	Body  []byte
	Stats Stats
}

// A Checker checks export request bodies.
type Checker struct {
	cfg     Config
	logger  log.Logger
	metrics *checkerMetrics
}

// NewChecker returns a Checker. A nil reg skips metric registration.
func NewChecker(cfg Config, reg prometheus.Registerer, logger log.Logger) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ingest config")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Checker{
		cfg:     cfg,
		logger:  logger,
		metrics: newCheckerMetrics(reg),
	}, nil
}

// Check reads body, decompresses it according to contentEncoding, and decodes
// it as a request of the given signal. Unless validation is skipped the
// decoded request is validated as well.
//
// When decoding succeeds but validation fails, Check returns both the result
// and the validation error.
func (c *Checker) Check(ctx context.Context, signal otlp.Signal, contentEncoding string, body io.Reader) (*Result, error) {
	res, err := c.check(ctx, signal, contentEncoding, body)

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
		c.metrics.discardedRequests.WithLabelValues(signal.String(), ReasonForError(err)).Inc()
	} else {
		c.metrics.items.WithLabelValues(signal.String()).Add(float64(res.Stats.Items))
	}
	c.metrics.requests.WithLabelValues(signal.String(), outcome).Inc()

	return res, err
}

func (c *Checker) check(ctx context.Context, signal otlp.Signal, contentEncoding string, body io.Reader) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Counts bytes as received, before decompression.
	bodySize := &sizeReader{r: body}
	buf, err := readBody(bodySize, contentEncoding, int64(c.cfg.MaxRecvMsgSize), int64(c.cfg.MaxDecompressedSize))
	c.metrics.receivedBytes.WithLabelValues(signal.String()).Add(float64(bodySize.Size()))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := otlp.Decode(signal, buf)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Request: req,
		Body:    buf,
		Stats: Stats{
			Signal:          signal,
			ContentEncoding: contentEncoding,
			BodySize:        bodySize.Size(),
			DecodedSize:     int64(len(buf)),
			Items:           otlp.ItemCount(req),
		},
	}

	logValues := []interface{}{
		"msg", "otlp request decoded",
		"signal", signal,
		"contentEncoding", contentEncoding,
		"bodySize", humanize.Bytes(uint64(res.Stats.BodySize)),
		"decodedSize", humanize.Bytes(uint64(res.Stats.DecodedSize)),
		"items", res.Stats.Items,
	}
	if c.cfg.LogRequestFingerprint {
		res.Stats.Fingerprint = xxhash.Sum64(buf)
		logValues = append(logValues, "fingerprint", strconv.FormatUint(res.Stats.Fingerprint, 16))
	}
	level.Debug(c.logger).Log(logValues...)

	if c.cfg.SkipValidation {
		return res, nil
	}
	if err := req.Validate(); err != nil {
		return res, err
	}
	return res, nil
}
