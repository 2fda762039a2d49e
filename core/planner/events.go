package planner

import (
	"time"

	"github.com/lmercadier/timetable/core/model"
)

// PlacementEvent is published when a task is placed into the day.
type PlacementEvent struct {
	Task  *model.Task
	Start time.Time
	End   time.Time
	Fixed bool
}

// RestInsertedEvent is published when the energy model forces a rest
// break before a high-difficulty placement.
type RestInsertedEvent struct {
	At           time.Time
	EnergyBefore float64
}

// TaskUnscheduledEvent is published when a task ends unscheduled for
// the run.
type TaskUnscheduledEvent struct {
	Task   *model.Task
	Reason string
}

// RunCompletedEvent is published once with the finalized result.
type RunCompletedEvent struct {
	Result *Result
}
