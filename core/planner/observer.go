package planner

import (
	"github.com/lmercadier/timetable/core/logger"
	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/internal/eventbus"
)

// EventObserver drains allocation events from a bus subscription,
// logging placements, rest insertions and drops as they happen.
// OnRunCompleted is invoked with each finalized result, letting callers
// chain downstream consumers such as the schedule notifier.
type EventObserver struct {
	Log            logger.Logger
	OnRunCompleted func(*Result)
}

// Run consumes events until the subscription channel closes.
func (o EventObserver) Run(sub <-chan eventbus.Event) {
	log := o.Log
	if log == nil {
		log = logger.Nop{}
	}
	for e := range sub {
		switch ev := e.(type) {
		case PlacementEvent:
			log.Debugw("observed placement", map[string]any{
				"task":  ev.Task.Name,
				"start": ev.Start.Format(model.ClockLayout),
				"fixed": ev.Fixed,
			})
		case RestInsertedEvent:
			log.Infof("observed rest at %s (energy was %.1f)",
				ev.At.Format(model.ClockLayout), ev.EnergyBefore)
		case TaskUnscheduledEvent:
			log.Infof("task %q left unscheduled: %s", ev.Task.Name, ev.Reason)
		case RunCompletedEvent:
			if o.OnRunCompleted != nil {
				o.OnRunCompleted(ev.Result)
			}
		}
	}
}
