package metrics

import (
	"errors"

	"github.com/lmercadier/timetable/core/metrics"
)

// MultiSink fans records out to several sinks, collecting all errors.
type MultiSink struct {
	sinks []metrics.Sink
}

// NewMultiSink groups the given sinks into one.
func NewMultiSink(sinks ...metrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPlacements(results []metrics.PlacementResult) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlacements(results); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordRunSummary(sum metrics.RunSummary) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordRunSummary(sum); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
