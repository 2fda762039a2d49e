package planner

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/lmercadier/timetable/core/metrics"
	"github.com/lmercadier/timetable/core/model"
)

// Result is the outcome of one optimization run. Scheduled lists fixed
// placements first, then flexible placements in the order they were
// made; Unscheduled preserves the original collection order.
type Result struct {
	RunID       string
	Date        string
	WindowStart time.Time
	WindowEnd   time.Time
	Scheduled   []*model.Task
	Unscheduled []*model.Task
	Blocks      []model.TimeBlock
	// MaxEnergy is the run's configured energy budget; FinalEnergy is
	// the level left when the run finished.
	MaxEnergy   float64
	FinalEnergy float64
	// Reasons maps unscheduled task names to the reason the run
	// recorded when dropping them.
	Reasons map[string]string
}

// Summary computes run-level figures: counts, final energy and the
// mean and standard deviation of per-block utilization (the fraction
// of each free block filled by flexible placements).
func (r *Result) Summary() metrics.RunSummary {
	s := metrics.RunSummary{
		RunID:       r.RunID,
		Date:        r.Date,
		Scheduled:   len(r.Scheduled),
		Unscheduled: len(r.Unscheduled),
		FinalEnergy: r.FinalEnergy,
	}
	for _, t := range r.Scheduled {
		if t.Name == restBreakName {
			s.RestBreaks++
		}
	}
	utils := r.blockUtilizations()
	if len(utils) > 0 {
		s.MeanUtilization = stat.Mean(utils, nil)
	}
	if len(utils) > 1 {
		s.StdevUtilization = stat.StdDev(utils, nil)
	}
	return s
}

func (r *Result) blockUtilizations() []float64 {
	utils := make([]float64, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if b.Minutes <= 0 {
			continue
		}
		filled := 0.0
		for _, t := range r.Scheduled {
			if t.IsFixed() && t.Name != restBreakName {
				continue
			}
			filled += overlapMinutes(t.ScheduledStart, t.ScheduledEnd, b.Start, b.End)
		}
		utils = append(utils, filled/float64(b.Minutes))
	}
	return utils
}

func overlapMinutes(aStart, aEnd, bStart, bEnd time.Time) float64 {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Minutes()
}
