package model

import "time"

// TimeBlock is a contiguous free interval between fixed tasks or the
// window boundaries, available for flexible placement. Blocks are
// transient: they are rebuilt on every optimization run.
type TimeBlock struct {
	Start   time.Time
	End     time.Time
	Minutes int
}
