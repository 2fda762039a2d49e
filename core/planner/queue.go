package planner

import "github.com/lmercadier/timetable/core/model"

// taskQueue is a heap of flexible tasks with a documented total order:
// priority score descending, then task name ascending. The name
// tie-break keeps placement order deterministic for equal scores.
type taskQueue []*model.Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].PriorityScore != q[j].PriorityScore {
		return q[i].PriorityScore > q[j].PriorityScore
	}
	return q[i].Name < q[j].Name
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*model.Task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
