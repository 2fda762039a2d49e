package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lmercadier/timetable/core/metrics"
)

// PromSink records placement events in Prometheus metrics.
type PromSink struct {
	placements  *prometheus.CounterVec
	unscheduled prometheus.Counter
	finalEnergy prometheus.Gauge
	utilization prometheus.Gauge
}

// NewPromSink registers the planner metrics on the provided registerer.
// If reg is nil, the default registerer is used. If the collectors are
// already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	placements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_placements_total",
		Help: "Total number of task placements",
	}, []string{"category", "difficulty", "fixed"})
	unscheduled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_unscheduled_total",
		Help: "Total number of tasks left unscheduled",
	})
	finalEnergy := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_final_energy",
		Help: "Energy level at the end of the last run",
	})
	utilization := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_mean_block_utilization",
		Help: "Mean free-block utilization of the last run",
	})

	s := &PromSink{
		placements:  placements,
		unscheduled: unscheduled,
		finalEnergy: finalEnergy,
		utilization: utilization,
	}
	for _, c := range []prometheus.Collector{placements, unscheduled, finalEnergy, utilization} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch existing := are.ExistingCollector.(type) {
			case *prometheus.CounterVec:
				s.placements = existing
			case prometheus.Gauge:
				if c == finalEnergy {
					s.finalEnergy = existing
				} else {
					s.utilization = existing
				}
			case prometheus.Counter:
				s.unscheduled = existing
			}
		}
	}
	return s, nil
}

// RecordPlacements increments the placement counter per result.
func (s *PromSink) RecordPlacements(results []metrics.PlacementResult) error {
	for _, r := range results {
		s.placements.WithLabelValues(r.Category, r.Difficulty, strconv.FormatBool(r.Fixed)).Inc()
	}
	return nil
}

// RecordRunSummary updates the run-level gauges and counters.
func (s *PromSink) RecordRunSummary(sum metrics.RunSummary) error {
	s.unscheduled.Add(float64(sum.Unscheduled))
	s.finalEnergy.Set(sum.FinalEnergy)
	s.utilization.Set(sum.MeanUtilization)
	return nil
}
