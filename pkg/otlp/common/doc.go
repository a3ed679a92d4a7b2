// Package common holds the OTLP messages shared by the metrics, logs and
// trace export requests: AnyValue and its array and map forms, KeyValue,
// Resource and InstrumentationScope.
package common
