package metrics

import "time"

// PlacementResult represents a single task placement to be recorded.
type PlacementResult struct {
	RunID      string
	Date       string
	TaskName   string
	Category   string
	Difficulty string
	Fixed      bool
	Start      time.Time
	End        time.Time
	Minutes    int
	Score      float64
	// EnergyAfter is the energy level once the placement was depleted.
	EnergyAfter float64
}

// RunSummary aggregates the outcome of one optimization run.
type RunSummary struct {
	RunID            string
	Date             string
	Scheduled        int
	Unscheduled      int
	RestBreaks       int
	FinalEnergy      float64
	MeanUtilization  float64
	StdevUtilization float64
}

// Sink records placement results for observability purposes.
type Sink interface {
	RecordPlacements(results []PlacementResult) error
	RecordRunSummary(summary RunSummary) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlacements([]PlacementResult) error { return nil }
func (NopSink) RecordRunSummary(RunSummary) error        { return nil }
