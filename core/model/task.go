package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day key format used throughout the planner.
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock format for fixed and rendered times.
// Fixed tasks are ordered lexically on the raw string, so hours should
// be zero padded ("09:00", not "9:00").
const ClockLayout = "15:04"

// Difficulty classifies how much focus a task demands.
type Difficulty int

const (
	DifficultyLow Difficulty = iota
	DifficultyMedium
	DifficultyHigh
)

// ParseDifficulty converts a user-supplied level into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return DifficultyLow, nil
	case "MEDIUM":
		return DifficultyMedium, nil
	case "HIGH":
		return DifficultyHigh, nil
	default:
		return DifficultyLow, fmt.Errorf("unknown difficulty %q", s)
	}
}

// String returns the canonical upper-case level name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyHigh:
		return "HIGH"
	case DifficultyMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// EnergyCost returns the per-hour energy cost unit for the level.
func (d Difficulty) EnergyCost() float64 {
	switch d {
	case DifficultyHigh:
		return 5
	case DifficultyMedium:
		return 3
	default:
		return 1
	}
}

// Category classifies the kind of activity a task represents.
type Category int

const (
	CategoryWork Category = iota
	CategoryPersonal
	CategoryTravel
	CategoryFitness
	CategoryOutdoor
	CategoryBreak
)

// ParseCategory converts a user-supplied category into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work":
		return CategoryWork, nil
	case "personal":
		return CategoryPersonal, nil
	case "travel":
		return CategoryTravel, nil
	case "fitness":
		return CategoryFitness, nil
	case "outdoor":
		return CategoryOutdoor, nil
	case "break":
		return CategoryBreak, nil
	default:
		return CategoryWork, fmt.Errorf("unknown category %q", s)
	}
}

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategoryPersonal:
		return "personal"
	case CategoryTravel:
		return "travel"
	case CategoryFitness:
		return "fitness"
	case CategoryOutdoor:
		return "outdoor"
	case CategoryBreak:
		return "break"
	default:
		return "work"
	}
}

// Resource tags the equipment a task needs. The tag is recorded for
// reporting only; the allocator never enforces it.
type Resource string

const (
	ResourceNone         Resource = ""
	ResourceLaptop       Resource = "Laptop"
	ResourceSpecificTool Resource = "Specific Tool"
	ResourcePhone        Resource = "Phone"
	ResourceCar          Resource = "Car"
)

// Task is a unit of work to be placed into the day.
type Task struct {
	Name             string
	Duration         int // nominal duration in minutes
	Difficulty       Difficulty
	Category         Category
	FixedStart       string // "HH:MM"; empty means the task is flexible
	DependsOn        string // name of a task that must be scheduled first
	IsOutdoor        bool
	RequiredResource Resource
	GroupID          string

	// EnergyCost is derived once from Difficulty at creation. It is the
	// per-hour depletion unit, not the total cost of the task.
	EnergyCost float64

	// Placement state, written by the allocator.
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	IsScheduled    bool

	// PriorityScore is transient and overwritten on every scoring pass.
	PriorityScore float64
}

// IsFixed reports whether the task is pinned to a clock time.
func (t *Task) IsFixed() bool { return t.FixedStart != "" }

// FixedStartAt resolves the task's fixed clock time on the given day.
func (t *Task) FixedStartAt(day time.Time) (time.Time, error) {
	clock, err := time.Parse(ClockLayout, t.FixedStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("fixed start %q: %w", t.FixedStart, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}

// EnergyRequired returns the total energy the task consumes at its
// nominal duration.
func (t *Task) EnergyRequired() float64 {
	return t.EnergyCost * float64(t.Duration) / 60
}
