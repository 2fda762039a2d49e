// Package report renders a finalized schedule as a human-readable
// timetable.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/core/planner"
)

const tableWidth = 80

// Render writes the finalized timetable to w: a boxed table of
// scheduled tasks ordered by start time, followed by the unscheduled
// tasks with their dependency and resource notes.
func Render(w io.Writer, res *planner.Result) {
	rule := strings.Repeat("=", tableWidth)
	budget := res.MaxEnergy
	if budget <= 0 {
		budget = planner.MaxEnergy
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "| %-76s |\n", "CONTEXTUALIZED DAILY TIME TABLE: "+res.Date)
	fmt.Fprintf(w, "| %-76s |\n", fmt.Sprintf("Final Estimated Energy Level: %.1f/%.0f", res.FinalEnergy, budget))
	fmt.Fprintln(w, rule)

	scheduled := make([]*model.Task, len(res.Scheduled))
	copy(scheduled, res.Scheduled)
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].ScheduledStart.Before(scheduled[j].ScheduledStart)
	})

	if len(scheduled) == 0 {
		fmt.Fprintf(w, "| %-76s |\n", "No tasks were successfully scheduled for today.")
		fmt.Fprintln(w, rule)
	} else {
		fmt.Fprintf(w, "| %-6s | %-6s | %-5s | %-8s | %-8s | %-43s |\n",
			"Start", "End", "Dura", "Type", "Priority", "Task Name")
		fmt.Fprintf(w, "|%s|%s|%s|%s|%s|%s|\n",
			strings.Repeat("-", 8), strings.Repeat("-", 8), strings.Repeat("-", 7),
			strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 45))
		for _, t := range scheduled {
			fmt.Fprintf(w, "| %-6s | %-6s | %-5d | %-8s | %-8s | %-43s |\n",
				t.ScheduledStart.Format(model.ClockLayout),
				t.ScheduledEnd.Format(model.ClockLayout),
				t.Duration,
				typeTag(t),
				priorityTag(t),
				truncate(t.Name, 43))
		}
		fmt.Fprintln(w, rule)
	}

	sum := res.Summary()
	fmt.Fprintf(w, "Scheduled: %d | Unscheduled: %d | Rest breaks: %d | Mean block fill: %.0f%%\n",
		sum.Scheduled, sum.Unscheduled, sum.RestBreaks, sum.MeanUtilization*100)

	unscheduled := displayableUnscheduled(res)
	if len(unscheduled) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "UNSCHEDULED TASKS:")
	for _, t := range unscheduled {
		line := fmt.Sprintf("  - %s (%s Focus, %d mins)", t.Name, t.Difficulty, t.Duration)
		if t.DependsOn != "" {
			line += fmt.Sprintf(" (Needs: %s)", t.DependsOn)
		}
		if t.RequiredResource != model.ResourceNone {
			line += fmt.Sprintf(" (Resource: %s)", t.RequiredResource)
		}
		if reason, ok := res.Reasons[t.Name]; ok {
			line += fmt.Sprintf(" [%s]", reason)
		}
		fmt.Fprintln(w, line)
	}
}

// displayableUnscheduled filters the remainder to flexible, non-break
// tasks; skipped fixed tasks and injected breaks are not listed.
func displayableUnscheduled(res *planner.Result) []*model.Task {
	var out []*model.Task
	for _, t := range res.Unscheduled {
		if t.IsFixed() || t.Category == model.CategoryBreak {
			continue
		}
		out = append(out, t)
	}
	return out
}

func typeTag(t *model.Task) string {
	switch {
	case t.Category == model.CategoryBreak:
		return "BREAK"
	case t.IsFixed():
		return "FIXED"
	default:
		return "FLEX"
	}
}

func priorityTag(t *model.Task) string {
	if t.Category == model.CategoryBreak {
		return "LOW"
	}
	return t.Difficulty.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
