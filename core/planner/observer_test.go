package planner

import (
	"testing"

	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/internal/eventbus"
)

func TestEventObserverForwardsRunCompleted(t *testing.T) {
	bus := eventbus.New()
	sub := bus.Subscribe()

	var got *Result
	done := make(chan struct{})
	obs := EventObserver{OnRunCompleted: func(r *Result) { got = r }}
	go func() {
		defer close(done)
		obs.Run(sub)
	}()

	res := &Result{RunID: "run-1", Date: testDate}
	bus.Publish(PlacementEvent{Task: &model.Task{Name: "Report"}})
	bus.Publish(RestInsertedEvent{EnergyBefore: 4.25})
	bus.Publish(TaskUnscheduledEvent{Task: &model.Task{Name: "Zeta"}, Reason: "no block left"})
	bus.Publish(RunCompletedEvent{Result: res})
	bus.Close()
	<-done

	if got != res {
		t.Fatalf("observer did not receive the finalized result")
	}
}

func TestOptimizeFeedsObserver(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, TaskSpec{Name: "Notes", DurationMinutes: 30, Difficulty: "LOW", Category: "personal"})

	opt := newTestOptimizer(s, Config{}, DurationAdjuster{})
	bus := eventbus.New()
	opt.SetEventBus(bus)
	sub := bus.Subscribe()

	var got *Result
	done := make(chan struct{})
	go func() {
		defer close(done)
		EventObserver{OnRunCompleted: func(r *Result) { got = r }}.Run(sub)
	}()

	res, err := opt.Optimize(testDate)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	bus.Close()
	<-done

	if got != res {
		t.Fatalf("finalized result was not delivered over the bus")
	}
}
