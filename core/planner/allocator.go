package planner

import (
	"container/heap"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lmercadier/timetable/core/logger"
	"github.com/lmercadier/timetable/core/metrics"
	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/internal/eventbus"
)

const (
	restBreakName    = "MANDATORY REST BREAK (Energy)"
	restBreakMinutes = 30

	// minUsableMinutes is the block-remainder floor below which no
	// further placement is attempted in the block.
	minUsableMinutes = 15
	// requeueMinutes is the minimum remainder for which an unfitting
	// task is requeued for a later block instead of dropped.
	requeueMinutes = 30
)

// Optimizer runs the greedy single-day allocation over a date's task
// collection. It is not safe for concurrent use; a date's collection is
// exclusively owned by the run for its duration.
type Optimizer struct {
	store  *Store
	adjust DurationAdjuster
	scorer Scorer
	energy *EnergyModel
	cfg    Config
	log    logger.Logger
	bus    eventbus.EventBus
	sink   metrics.Sink
}

// NewOptimizer assembles an optimizer from its collaborators. A nil
// logger is replaced by a no-op one.
func NewOptimizer(store *Store, adjust DurationAdjuster, cfg Config, log logger.Logger) *Optimizer {
	if log == nil {
		log = logger.Nop{}
	}
	return &Optimizer{
		store:  store,
		adjust: adjust,
		scorer: NewScorer(cfg),
		energy: NewEnergyModel(cfg.MaxEnergy),
		cfg:    cfg,
		log:    log,
		sink:   metrics.NopSink{},
	}
}

// SetEventBus configures an optional bus on which allocation events are
// published.
func (o *Optimizer) SetEventBus(bus eventbus.EventBus) { o.bus = bus }

// SetMetricsSink configures the sink that records placements. A nil
// sink restores the no-op default.
func (o *Optimizer) SetMetricsSink(sink metrics.Sink) {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	o.sink = sink
}

func (o *Optimizer) publish(e eventbus.Event) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}

// Optimize builds the day's timetable for the date. Every task in the
// collection resolves to scheduled or unscheduled; unschedulable tasks
// are reported in the result, never as an error. The only error path is
// a malformed date.
func (o *Optimizer) Optimize(date string) (*Result, error) {
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), o.cfg.StartHour, 0, 0, 0, day.Location())
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), o.cfg.EndHour, 0, 0, 0, day.Location())

	BreakInjector{Store: o.store, Log: o.log}.Inject(date, windowStart, windowEnd)
	o.energy.Reset()

	run := &runState{
		result: &Result{
			RunID:       uuid.NewString(),
			Date:        date,
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			MaxEnergy:   o.energy.Max(),
		},
		scheduledNames: make(map[string]struct{}),
		unscheduled:    make(map[*model.Task]string),
	}

	all := o.store.Tasks(date)
	var fixed, flexible []*model.Task
	for _, t := range all {
		if t.IsFixed() {
			fixed = append(fixed, t)
		} else {
			flexible = append(flexible, t)
		}
	}

	cursor := o.fixedPass(run, fixed, day, windowStart, windowEnd)
	if cursor.Before(windowEnd) {
		o.addBlock(run, cursor, windowEnd)
	}

	o.flexibleDrain(run, flexible, cursor.Hour())
	o.finalize(run, all)
	return run.result, nil
}

// runState carries the mutable state of one optimization run.
type runState struct {
	result         *Result
	scheduledNames map[string]struct{}
	newlyScheduled []*model.Task
	unscheduled    map[*model.Task]string // task -> reason
	placements     []metrics.PlacementResult
	queue          taskQueue
}

func (o *Optimizer) addBlock(run *runState, start, end time.Time) {
	minutes := int(end.Sub(start).Minutes())
	if minutes <= 0 {
		return
	}
	run.result.Blocks = append(run.result.Blocks, model.TimeBlock{Start: start, End: end, Minutes: minutes})
}

// fixedPass places fixed tasks in clock order, recording the free
// blocks between them, and returns the cursor after the last placement.
// Tasks with malformed fixed times are skipped silently and stay
// unscheduled; a fixed start at or past the window end stops the pass.
func (o *Optimizer) fixedPass(run *runState, fixed []*model.Task, day, windowStart, windowEnd time.Time) time.Time {
	sort.SliceStable(fixed, func(i, j int) bool {
		return fixed[i].FixedStart < fixed[j].FixedStart
	})
	cursor := windowStart
	for _, t := range fixed {
		at, err := t.FixedStartAt(day)
		if err != nil {
			o.log.Warnf("skipping fixed task %q: %v", t.Name, err)
			o.markUnscheduled(run, t, "invalid fixed start")
			continue
		}
		if at.After(cursor) {
			o.addBlock(run, cursor, at)
		}
		if !at.Before(windowEnd) {
			break
		}
		minutes := o.adjust.EffectiveDuration(t, run.result.Date)
		end := at.Add(time.Duration(minutes) * time.Minute)
		if end.After(windowEnd) {
			end = windowEnd
		}
		o.place(run, t, at, end, minutes, true)
		cursor = end
	}
	return cursor
}

// flexibleDrain scores all flexible tasks against the post-fixed-pass
// snapshot and fills each block from the priority queue.
func (o *Optimizer) flexibleDrain(run *runState, flexible []*model.Task, hourOfDay int) {
	run.queue = make(taskQueue, 0, len(flexible))
	for _, t := range flexible {
		o.scorer.Score(t, hourOfDay, o.energy.Level())
		run.queue = append(run.queue, t)
	}
	heap.Init(&run.queue)

	for _, block := range run.result.Blocks {
		o.fillBlock(run, block)
	}

	// Whatever is still queued after the last block is unschedulable.
	for run.queue.Len() > 0 {
		t := heap.Pop(&run.queue).(*model.Task)
		o.markUnscheduled(run, t, "no block left")
	}
}

func (o *Optimizer) fillBlock(run *runState, block model.TimeBlock) {
	slot := block.Start
	for remaining(slot, block.End) > minUsableMinutes && run.queue.Len() > 0 {
		t := heap.Pop(&run.queue).(*model.Task)

		// Dependency gate: an unmet dependency at pop time is final
		// for this run, even if the dependency schedules later.
		if t.DependsOn != "" {
			if _, ok := run.scheduledNames[t.DependsOn]; !ok {
				o.markUnscheduled(run, t, "unmet dependency "+t.DependsOn)
				continue
			}
		}

		minutes := o.adjust.EffectiveDuration(t, run.result.Date)
		rem := remaining(slot, block.End)
		switch {
		case minutes <= rem:
			if o.energy.NeedsRest(t) {
				slot = o.insertRest(run, slot)
				rem -= restBreakMinutes
				minutes = o.adjust.EffectiveDuration(t, run.result.Date)
				if minutes > rem {
					o.markUnscheduled(run, t, "no fit after rest")
					continue
				}
			}
			end := slot.Add(time.Duration(minutes) * time.Minute)
			o.place(run, t, slot, end, minutes, false)
			run.newlyScheduled = append(run.newlyScheduled, t)
			slot = end
		case rem >= requeueMinutes:
			// Leave a usable remainder for the queue and retry the
			// task against a later block.
			heap.Push(&run.queue, t)
			return
		default:
			o.markUnscheduled(run, t, "remaining block too small")
		}
	}
}

// place marks the task scheduled, depletes energy and records the
// placement.
func (o *Optimizer) place(run *runState, t *model.Task, start, end time.Time, minutes int, isFixed bool) {
	t.ScheduledStart = start
	t.ScheduledEnd = end
	t.IsScheduled = true
	run.scheduledNames[t.Name] = struct{}{}
	if isFixed {
		run.result.Scheduled = append(run.result.Scheduled, t)
	}
	o.energy.Deplete(t.EnergyCost, minutes)
	o.log.Debugw("placed task", map[string]any{
		"task":   t.Name,
		"start":  start.Format(model.ClockLayout),
		"end":    end.Format(model.ClockLayout),
		"fixed":  isFixed,
		"energy": o.energy.Level(),
	})
	o.publish(PlacementEvent{Task: t, Start: start, End: end, Fixed: isFixed})
	run.placements = append(run.placements, metrics.PlacementResult{
		RunID:       run.result.RunID,
		Date:        run.result.Date,
		TaskName:    t.Name,
		Category:    t.Category.String(),
		Difficulty:  t.Difficulty.String(),
		Fixed:       isFixed,
		Start:       start,
		End:         end,
		Minutes:     minutes,
		Score:       t.PriorityScore,
		EnergyAfter: o.energy.Level(),
	})
}

// insertRest appends an already-scheduled rest break at the slot,
// resets the energy budget and returns the advanced slot cursor.
func (o *Optimizer) insertRest(run *runState, slot time.Time) time.Time {
	before := o.energy.Level()
	rest := &model.Task{
		Name:           restBreakName,
		Duration:       restBreakMinutes,
		Difficulty:     model.DifficultyLow,
		Category:       model.CategoryBreak,
		FixedStart:     slot.Format(model.ClockLayout),
		EnergyCost:     0,
		ScheduledStart: slot,
		ScheduledEnd:   slot.Add(restBreakMinutes * time.Minute),
		IsScheduled:    true,
	}
	o.store.append(run.result.Date, rest)
	run.newlyScheduled = append(run.newlyScheduled, rest)
	o.energy.Reset()
	o.log.Infof("energy critically low (%.1f), inserted %d min rest at %s",
		before, restBreakMinutes, slot.Format(model.ClockLayout))
	o.publish(RestInsertedEvent{At: slot, EnergyBefore: before})
	return rest.ScheduledEnd
}

func (o *Optimizer) markUnscheduled(run *runState, t *model.Task, reason string) {
	run.unscheduled[t] = reason
	o.log.Debugf("task %q unscheduled: %s", t.Name, reason)
	o.publish(TaskUnscheduledEvent{Task: t, Reason: reason})
}

// finalize rebuilds the date's collection as scheduled fixed tasks,
// newly scheduled flexible tasks, then the unscheduled remainder in its
// original order, and flushes the run to the metrics sink.
func (o *Optimizer) finalize(run *runState, all []*model.Task) {
	res := run.result
	for _, t := range run.newlyScheduled {
		res.Scheduled = append(res.Scheduled, t)
	}
	// The unscheduled remainder covers queue drops as well as fixed
	// tasks skipped for malformed times or a start past the window end.
	for _, t := range all {
		if !t.IsScheduled {
			res.Unscheduled = append(res.Unscheduled, t)
		}
	}
	res.Reasons = make(map[string]string, len(run.unscheduled))
	for t, reason := range run.unscheduled {
		res.Reasons[t.Name] = reason
	}
	rebuilt := make([]*model.Task, 0, len(res.Scheduled)+len(res.Unscheduled))
	rebuilt = append(rebuilt, res.Scheduled...)
	rebuilt = append(rebuilt, res.Unscheduled...)
	o.store.Replace(res.Date, rebuilt)
	res.FinalEnergy = o.energy.Level()

	if err := o.sink.RecordPlacements(run.placements); err != nil {
		o.log.Errorf("record placements: %v", err)
	}
	if err := o.sink.RecordRunSummary(res.Summary()); err != nil {
		o.log.Errorf("record run summary: %v", err)
	}
	o.publish(RunCompletedEvent{Result: res})
	o.log.Infof("run %s: %d scheduled, %d unscheduled, final energy %.1f",
		res.RunID, len(res.Scheduled), len(res.Unscheduled), res.FinalEnergy)
}

func remaining(slot, end time.Time) int {
	return int(end.Sub(slot).Minutes())
}
