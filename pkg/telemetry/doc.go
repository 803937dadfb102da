// Package telemetry instruments route resolution with Prometheus
// metrics and OpenTelemetry spans. Both are optional: a nil Metrics or
// Tracer is a no-op.
package telemetry
