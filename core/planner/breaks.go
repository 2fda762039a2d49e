package planner

import (
	"time"

	"github.com/lmercadier/timetable/core/logger"
	"github.com/lmercadier/timetable/core/model"
)

// Mandatory break slots inserted before every allocation run.
const (
	lunchName      = "Mandatory Lunch"
	lunchClock     = "12:30"
	lunchMinutes   = 45
	rechargeName   = "Afternoon Recharge Break"
	rechargeClock  = "15:00"
	rechargeMinute = 30
)

// BreakInjector appends the non-negotiable daily breaks to a date's
// task set. Insertion is idempotent per time slot: a break is skipped
// when any task is already fixed at its exact clock time, and silently
// skipped when the slot falls outside the schedule window.
type BreakInjector struct {
	Store *Store
	Log   logger.Logger
}

// Inject adds the lunch and afternoon recharge breaks for the date
// when their slots fall within [windowStart, windowEnd).
func (b BreakInjector) Inject(date string, windowStart, windowEnd time.Time) {
	log := b.Log
	if log == nil {
		log = logger.Nop{}
	}
	breaks := []struct {
		name    string
		clock   string
		minutes int
	}{
		{lunchName, lunchClock, lunchMinutes},
		{rechargeName, rechargeClock, rechargeMinute},
	}
	for _, br := range breaks {
		clock, err := time.Parse(model.ClockLayout, br.clock)
		if err != nil {
			continue
		}
		at := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(),
			clock.Hour(), clock.Minute(), 0, 0, windowStart.Location())
		if at.Before(windowStart) || !at.Before(windowEnd) {
			log.Debugf("break %q at %s outside window, skipped", br.name, br.clock)
			continue
		}
		if b.Store.hasFixedAt(date, clock) {
			continue
		}
		if _, err := b.Store.AddTask(date, TaskSpec{
			Name:            br.name,
			DurationMinutes: br.minutes,
			Difficulty:      model.DifficultyLow.String(),
			Category:        model.CategoryBreak.String(),
			FixedStart:      br.clock,
		}); err != nil {
			log.Errorf("inject break %q: %v", br.name, err)
			continue
		}
		log.Infof("added mandatory break %q at %s", br.name, br.clock)
	}
}
