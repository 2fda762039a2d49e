package planner

import "github.com/lmercadier/timetable/core/model"

// Peak-window and energy-fit multipliers applied on top of the base
// difficulty weight.
const (
	peakHighBoost    = 1.8
	peakOtherPenalty = 0.5
	offPeakHighDrop  = 0.7
	lowEnergyPenalty = 0.2
	highEnergyBoost  = 1.1
	comfortFraction  = 0.7
)

// Scorer computes the placement priority of a flexible task for a given
// hour of day and energy level. Higher scores place earlier.
type Scorer struct {
	Weights       FocusWeights
	PeakStartHour int
	PeakEndHour   int
	MaxEnergy     float64
}

// NewScorer builds a scorer from the planner configuration.
func NewScorer(cfg Config) Scorer {
	return Scorer{
		Weights:       cfg.Weights,
		PeakStartHour: cfg.PeakStartHour,
		PeakEndHour:   cfg.PeakEndHour,
		MaxEnergy:     cfg.MaxEnergy,
	}
}

func (s Scorer) baseWeight(d model.Difficulty) float64 {
	switch d {
	case model.DifficultyHigh:
		return s.Weights.High
	case model.DifficultyMedium:
		return s.Weights.Medium
	default:
		return s.Weights.Low
	}
}

// Score computes and stores the task's priority score. The hour of day
// is a run-level snapshot taken after the fixed pass; all flexible
// tasks are scored against the same hour regardless of which block
// they eventually land in.
func (s Scorer) Score(t *model.Task, hourOfDay int, energy float64) float64 {
	score := s.baseWeight(t.Difficulty)
	peak := hourOfDay >= s.PeakStartHour && hourOfDay < s.PeakEndHour
	switch {
	case peak && t.Difficulty == model.DifficultyHigh:
		score *= peakHighBoost
	case peak:
		score *= peakOtherPenalty
	case t.Difficulty == model.DifficultyHigh:
		score *= offPeakHighDrop
	}
	if energy < t.EnergyRequired() && t.Difficulty != model.DifficultyLow {
		score *= lowEnergyPenalty
	} else if energy > s.MaxEnergy*comfortFraction && t.Difficulty == model.DifficultyHigh {
		score *= highEnergyBoost
	}
	t.PriorityScore = score
	return score
}
