package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type checkerMetrics struct {
	requests          *prometheus.CounterVec
	receivedBytes     *prometheus.CounterVec
	items             *prometheus.CounterVec
	discardedRequests *prometheus.CounterVec
}

func newCheckerMetrics(reg prometheus.Registerer) *checkerMetrics {
	return &checkerMetrics{
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "otlp_ingest_requests_total",
			Help: "Total number of checked OTLP export requests by outcome.",
		}, []string{"signal", "outcome"}),
		receivedBytes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "otlp_ingest_received_bytes_total",
			Help: "Total number of request body bytes received, before decompression.",
		}, []string{"signal"}),
		items: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "otlp_ingest_items_total",
			Help: "Total number of data points, log records or spans in accepted requests.",
		}, []string{"signal"}),
		discardedRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "otlp_ingest_discarded_requests_total",
			Help: "Total number of rejected OTLP export requests by reason.",
		}, []string{"signal", "reason"}),
	}
}
