package metrics

// Package metrics defines the recording contract for optimization runs.
// Sinks like PromSink and InfluxSink record task placements and
// run-level summaries and can be combined with NewMultiSink; NopSink is
// the default when no observability backend is configured.
