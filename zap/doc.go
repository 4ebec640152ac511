// Package zap provides a zap-backed implementation of the log.Logger facade.
//
// New builds a JSON-encoded zap logger profiled by environment, with its
// output teed through the OpenTelemetry otelzap bridge so log records reach
// any configured OTel log pipeline. Entries emitted with a context carrying
// an active span are annotated with trace_id and span_id.
package zap
