// Package export serializes finalized schedules for downstream tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/core/planner"
)

// Entry is one scheduled task in exportable form. Times are rendered in
// wall-clock "HH:MM" form; Minutes is the placed (effective) duration.
type Entry struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Minutes    int    `json:"minutes"`
	Fixed      bool   `json:"fixed"`
}

// Entries flattens the result's scheduled tasks.
func Entries(res *planner.Result) []Entry {
	entries := make([]Entry, 0, len(res.Scheduled))
	for _, t := range res.Scheduled {
		entries = append(entries, Entry{
			Name:       t.Name,
			Category:   t.Category.String(),
			Difficulty: t.Difficulty.String(),
			Start:      t.ScheduledStart.Format(model.ClockLayout),
			End:        t.ScheduledEnd.Format(model.ClockLayout),
			Minutes:    int(t.ScheduledEnd.Sub(t.ScheduledStart).Minutes()),
			Fixed:      t.IsFixed(),
		})
	}
	return entries
}

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, res *planner.Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(Entries(res))
}

// WriteCSV writes the schedule to w in CSV format.
func WriteCSV(w io.Writer, res *planner.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "category", "difficulty", "start", "end", "minutes", "fixed"}); err != nil {
		return err
	}
	for _, e := range Entries(res) {
		rec := []string{
			e.Name,
			e.Category,
			e.Difficulty,
			e.Start,
			e.End,
			strconv.Itoa(e.Minutes),
			strconv.FormatBool(e.Fixed),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
