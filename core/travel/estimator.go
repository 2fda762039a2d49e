// Package travel defines the travel-time estimation capability consumed
// by the planner when adjusting travel-category tasks.
package travel

// Estimator provides a door-to-door travel time estimate in minutes for
// the named task. Implementations may query live services; tests should
// use a fixed-value implementation so placement is deterministic.
type Estimator interface {
	Estimate(taskName string) int
}
