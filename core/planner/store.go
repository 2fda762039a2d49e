package planner

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lmercadier/timetable/core/model"
)

// ErrInvalidDifficulty is returned when a task is added with an
// unrecognized difficulty and its category is not break.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// ErrInvalidCategory is returned when a task is added with an
// unrecognized category.
var ErrInvalidCategory = errors.New("invalid category")

// TaskSpec describes a task to add to a date's collection.
type TaskSpec struct {
	Name             string
	DurationMinutes  int
	Difficulty       string
	Category         string
	FixedStart       string
	DependsOn        string
	IsOutdoor        bool
	RequiredResource string
	GroupID          string
}

// Store holds per-date task collections. Collections are append-only;
// an optimization run rewrites a date's ordering but never drops tasks.
// The mutex covers map access only: a date's collection is exclusively
// owned by a run for its duration.
type Store struct {
	mu    sync.Mutex
	tasks map[string][]*model.Task
}

// NewStore returns an empty task store.
func NewStore() *Store {
	return &Store{tasks: make(map[string][]*model.Task)}
}

// AddTask validates the spec, derives the energy cost and appends the
// task to the date's collection.
func (s *Store) AddTask(date string, spec TaskSpec) (*model.Task, error) {
	if spec.DurationMinutes <= 0 {
		return nil, fmt.Errorf("task %q: duration must be positive", spec.Name)
	}
	category, err := model.ParseCategory(spec.Category)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w: %q", spec.Name, ErrInvalidCategory, spec.Category)
	}
	difficulty, err := model.ParseDifficulty(spec.Difficulty)
	if err != nil {
		// Breaks bypass the difficulty check and fall back to LOW.
		if category != model.CategoryBreak {
			return nil, fmt.Errorf("task %q: %w: %q", spec.Name, ErrInvalidDifficulty, spec.Difficulty)
		}
		difficulty = model.DifficultyLow
	}
	t := &model.Task{
		Name:             spec.Name,
		Duration:         spec.DurationMinutes,
		Difficulty:       difficulty,
		Category:         category,
		FixedStart:       spec.FixedStart,
		DependsOn:        spec.DependsOn,
		IsOutdoor:        spec.IsOutdoor,
		RequiredResource: model.Resource(spec.RequiredResource),
		GroupID:          spec.GroupID,
		EnergyCost:       difficulty.EnergyCost(),
	}
	s.append(date, t)
	return t, nil
}

func (s *Store) append(date string, t *model.Task) {
	s.mu.Lock()
	s.tasks[date] = append(s.tasks[date], t)
	s.mu.Unlock()
}

// Tasks returns the date's collection. The slice header is a copy but
// the tasks themselves are shared; the allocator mutates them in place.
func (s *Store) Tasks(date string) []*model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Task, len(s.tasks[date]))
	copy(out, s.tasks[date])
	return out
}

// Replace rewrites the date's collection ordering after a run.
func (s *Store) Replace(date string, tasks []*model.Task) {
	s.mu.Lock()
	s.tasks[date] = tasks
	s.mu.Unlock()
}

// hasFixedAt reports whether any task on the date is pinned to the
// given clock time. Malformed fixed times are ignored.
func (s *Store) hasFixedAt(date string, clock time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks[date] {
		if !t.IsFixed() {
			continue
		}
		at, err := time.Parse(model.ClockLayout, t.FixedStart)
		if err != nil {
			continue
		}
		if at.Hour() == clock.Hour() && at.Minute() == clock.Minute() {
			return true
		}
	}
	return false
}
