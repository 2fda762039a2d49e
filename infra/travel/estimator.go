// Package travel provides Estimator implementations for the planner.
package travel

import (
	"math/rand"
	"time"
)

// Estimate bounds for the simulated live travel service, in minutes.
const (
	minEstimate = 20
	maxEstimate = 50
)

// RandomEstimator simulates a live travel API with jittered estimates
// in [minEstimate, maxEstimate].
type RandomEstimator struct {
	rng *rand.Rand
}

// NewRandomEstimator returns an estimator seeded with the given value.
// A zero seed uses the current time.
func NewRandomEstimator(seed int64) *RandomEstimator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomEstimator{rng: rand.New(rand.NewSource(seed))}
}

// Estimate returns a pseudo-random travel time for the task.
func (e *RandomEstimator) Estimate(string) int {
	return minEstimate + e.rng.Intn(maxEstimate-minEstimate+1)
}

// FixedEstimator always returns the configured number of minutes. It is
// the deterministic double used by tests and offline runs.
type FixedEstimator struct {
	Minutes int
}

func (e FixedEstimator) Estimate(string) int { return e.Minutes }
