// Package planner contains the single-day allocation engine. A run
// injects mandatory breaks into the date's task set, places fixed tasks
// at their pinned clock times, partitions the remaining window into
// free time blocks and fills them greedily from a priority-ordered
// queue of flexible tasks, consulting the travel and weather
// capabilities and a simulated energy budget at every placement
// attempt.
//
// A run mutates the date's task collection in place and is not
// idempotent: optimizing the same date twice re-enters previously
// placed flexible tasks into scoring without resetting their placement
// state. Callers that need re-optimization must rebuild the collection
// first.
package planner
