package planner

import (
	"testing"

	"github.com/lmercadier/timetable/core/forecast"
	"github.com/lmercadier/timetable/core/model"
)

// fixedTravel is a deterministic Estimator double.
type fixedTravel struct{ minutes int }

func (f fixedTravel) Estimate(string) int { return f.minutes }

// staticWeather is a deterministic Provider double.
type staticWeather map[string]forecast.Condition

func (w staticWeather) Forecast(date string) forecast.Condition {
	if c, ok := w[date]; ok {
		return c
	}
	return forecast.Clear
}

func TestEffectiveDurationTravelOverride(t *testing.T) {
	a := DurationAdjuster{Travel: fixedTravel{minutes: 35}}
	task := &model.Task{Name: "commute", Duration: 90, Category: model.CategoryTravel}
	if got := a.EffectiveDuration(task, testDate); got != 35 {
		t.Fatalf("got %d, want travel estimate 35", got)
	}
}

func TestEffectiveDurationRainDelay(t *testing.T) {
	a := DurationAdjuster{Weather: staticWeather{testDate: forecast.Rain}}
	task := &model.Task{Name: "run", Duration: 45, Category: model.CategoryFitness, IsOutdoor: true}
	if got := a.EffectiveDuration(task, testDate); got != 105 {
		t.Fatalf("got %d, want 45+60", got)
	}
}

func TestEffectiveDurationIndoorIgnoresRain(t *testing.T) {
	a := DurationAdjuster{Weather: staticWeather{testDate: forecast.Rain}}
	task := &model.Task{Name: "write", Duration: 45, Category: model.CategoryWork}
	if got := a.EffectiveDuration(task, testDate); got != 45 {
		t.Fatalf("got %d, want nominal 45", got)
	}
}

func TestEffectiveDurationCumulative(t *testing.T) {
	a := DurationAdjuster{
		Travel:  fixedTravel{minutes: 25},
		Weather: staticWeather{testDate: forecast.Rain},
	}
	task := &model.Task{Name: "bike to office", Duration: 90, Category: model.CategoryTravel, IsOutdoor: true}
	// Travel override first, then the weather delay on top.
	if got := a.EffectiveDuration(task, testDate); got != 85 {
		t.Fatalf("got %d, want 25+60", got)
	}
}

func TestEffectiveDurationOtherConditionsAddNothing(t *testing.T) {
	a := DurationAdjuster{Weather: staticWeather{testDate: forecast.Windy}}
	task := &model.Task{Name: "hike", Duration: 120, Category: model.CategoryOutdoor, IsOutdoor: true}
	if got := a.EffectiveDuration(task, testDate); got != 120 {
		t.Fatalf("got %d, want nominal 120", got)
	}
}
