package planner

import "github.com/lmercadier/timetable/core/model"

// MaxEnergy is the default full energy budget for a day.
const MaxEnergy = 50.0

// restThresholdFraction of the budget below which a forced rest becomes
// possible for high-difficulty tasks.
const restThresholdFraction = 0.3

// EnergyModel tracks the simulated energy budget of a run. The level is
// depleted by placements and may transiently drop below zero; it never
// exceeds the maximum.
type EnergyModel struct {
	max   float64
	level float64
}

// NewEnergyModel returns a model initialized at the full budget.
func NewEnergyModel(max float64) *EnergyModel {
	if max <= 0 {
		max = MaxEnergy
	}
	return &EnergyModel{max: max, level: max}
}

// Reset restores the level to the full budget.
func (e *EnergyModel) Reset() { e.level = e.max }

// Level returns the current energy level.
func (e *EnergyModel) Level() float64 { return e.level }

// Max returns the full budget.
func (e *EnergyModel) Max() float64 { return e.max }

// Deplete subtracts the energy consumed by a placement. The level is
// intentionally not clamped at zero.
func (e *EnergyModel) Deplete(costPerHour float64, minutes int) {
	e.level -= costPerHour * float64(minutes) / 60
}

// NeedsRest reports whether placing the task requires a forced rest
// first: the task is high difficulty and the level is below both the
// task's own requirement and 30% of the budget. The requirement uses
// the nominal duration, not the adjusted one.
func (e *EnergyModel) NeedsRest(t *model.Task) bool {
	if t.Difficulty != model.DifficultyHigh {
		return false
	}
	return e.level < t.EnergyRequired() && e.level < e.max*restThresholdFraction
}
