package planner

import "fmt"

// FocusWeights maps difficulty levels to their base scheduling weight.
type FocusWeights struct {
	High   float64 `json:"high"`
	Medium float64 `json:"medium"`
	Low    float64 `json:"low"`
}

// DefaultFocusWeights returns the standard difficulty weighting.
func DefaultFocusWeights() FocusWeights {
	return FocusWeights{High: 3, Medium: 2, Low: 1}
}

// Config defines the schedule window and scoring parameters for a run.
type Config struct {
	// StartHour and EndHour bound the schedulable day, [start, end).
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
	// PeakStartHour and PeakEndHour bound the peak focus window in
	// which high-difficulty work is boosted.
	PeakStartHour int `json:"peak_start_hour"`
	PeakEndHour   int `json:"peak_end_hour"`
	// MaxEnergy is the full simulated energy budget for the day.
	MaxEnergy float64 `json:"max_energy"`
	// Weights are the difficulty base weights used by the scorer.
	Weights FocusWeights `json:"weights"`
}

// SetDefaults applies the standard window and weights.
func (c *Config) SetDefaults() {
	if c.StartHour == 0 && c.EndHour == 0 {
		c.StartHour = 8
		c.EndHour = 18
	}
	if c.PeakStartHour == 0 && c.PeakEndHour == 0 {
		c.PeakStartHour = 9
		c.PeakEndHour = 13
	}
	if c.MaxEnergy == 0 {
		c.MaxEnergy = MaxEnergy
	}
	if c.Weights == (FocusWeights{}) {
		c.Weights = DefaultFocusWeights()
	}
}

// Validate checks that the window and peak hours are coherent.
func (c Config) Validate() error {
	if c.StartHour < 0 || c.EndHour > 24 || c.StartHour >= c.EndHour {
		return fmt.Errorf("invalid schedule window %d-%d", c.StartHour, c.EndHour)
	}
	if c.PeakStartHour >= c.PeakEndHour {
		return fmt.Errorf("invalid peak window %d-%d", c.PeakStartHour, c.PeakEndHour)
	}
	if c.MaxEnergy <= 0 {
		return fmt.Errorf("max_energy must be positive")
	}
	return nil
}
