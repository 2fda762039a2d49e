package planner

import (
	"github.com/lmercadier/timetable/core/forecast"
	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/core/travel"
)

// rainDelayMinutes is added to outdoor tasks when the forecast is Rain.
const rainDelayMinutes = 60

// DurationAdjuster computes a task's effective duration for a given
// day. Travel-category tasks have their nominal duration replaced by
// the estimator's value; outdoor tasks gain a fixed rain delay. The
// adjustments are cumulative and never cached: block-fit decisions
// depend on the value current at each placement attempt.
type DurationAdjuster struct {
	Travel  travel.Estimator
	Weather forecast.Provider
}

// EffectiveDuration returns the minutes the task will occupy on the
// given date.
func (a DurationAdjuster) EffectiveDuration(t *model.Task, date string) int {
	minutes := t.Duration
	if t.Category == model.CategoryTravel && a.Travel != nil {
		minutes = a.Travel.Estimate(t.Name)
	}
	if t.IsOutdoor && a.Weather != nil && a.Weather.Forecast(date) == forecast.Rain {
		minutes += rainDelayMinutes
	}
	return minutes
}
