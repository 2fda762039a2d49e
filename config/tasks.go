package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lmercadier/timetable/core/planner"
)

// TaskEntry is one task in a tasks file.
type TaskEntry struct {
	Name       string `yaml:"name"`
	Duration   int    `yaml:"duration_minutes"`
	Difficulty string `yaml:"difficulty"`
	Category   string `yaml:"category"`
	FixedStart string `yaml:"fixed_start"`
	DependsOn  string `yaml:"depends_on"`
	Outdoor    bool   `yaml:"outdoor"`
	Resource   string `yaml:"resource"`
	GroupID    string `yaml:"group_id"`
}

// Spec converts the entry into a planner task spec.
func (e TaskEntry) Spec() planner.TaskSpec {
	return planner.TaskSpec{
		Name:             e.Name,
		DurationMinutes:  e.Duration,
		Difficulty:       e.Difficulty,
		Category:         e.Category,
		FixedStart:       e.FixedStart,
		DependsOn:        e.DependsOn,
		IsOutdoor:        e.Outdoor,
		RequiredResource: e.Resource,
		GroupID:          e.GroupID,
	}
}

// LoadTasks reads a YAML tasks file.
func LoadTasks(path string) ([]TaskEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}
	var entries []TaskEntry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("decode tasks file: %w", err)
	}
	return entries, nil
}
