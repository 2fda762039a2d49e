// Package forecast provides Provider implementations for the planner.
package forecast

import (
	"time"

	coreforecast "github.com/lmercadier/timetable/core/forecast"
	"github.com/lmercadier/timetable/core/model"
)

// StaticProvider serves forecasts from a fixed date-to-condition table.
// Unknown dates resolve to Clear.
type StaticProvider struct {
	conditions map[string]coreforecast.Condition
}

// NewStaticProvider builds a provider from a raw date-to-condition map,
// as loaded from configuration.
func NewStaticProvider(table map[string]string) *StaticProvider {
	conditions := make(map[string]coreforecast.Condition, len(table))
	for date, cond := range table {
		conditions[date] = coreforecast.Condition(cond)
	}
	return &StaticProvider{conditions: conditions}
}

// Forecast returns the condition configured for the date, or Clear.
func (p *StaticProvider) Forecast(date string) coreforecast.Condition {
	if c, ok := p.conditions[date]; ok {
		return c
	}
	return coreforecast.Clear
}

// DefaultTable returns the simulated three-day forecast used when no
// weather table is configured: clear today, rain tomorrow, wind the day
// after.
func DefaultTable(now time.Time) map[string]string {
	return map[string]string{
		now.Format(model.DateLayout):                  string(coreforecast.Clear),
		now.AddDate(0, 0, 1).Format(model.DateLayout): string(coreforecast.Rain),
		now.AddDate(0, 0, 2).Format(model.DateLayout): string(coreforecast.Windy),
	}
}
