package planner

import (
	"container/heap"
	"math"
	"testing"

	"github.com/lmercadier/timetable/core/model"
)

func testScorer() Scorer {
	cfg := Config{}
	cfg.SetDefaults()
	return NewScorer(cfg)
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScorePeakWindowBoostsHigh(t *testing.T) {
	s := testScorer()
	task := &model.Task{Name: "design", Duration: 60, Difficulty: model.DifficultyHigh, EnergyCost: 5}
	// In peak (hour 10) with a comfortable energy level: 3*1.8*1.1.
	if got := s.Score(task, 10, 50); !almostEqual(got, 5.94) {
		t.Fatalf("peak high score = %v, want 5.94", got)
	}
}

func TestScorePeakWindowPenalizesOthers(t *testing.T) {
	s := testScorer()
	task := &model.Task{Name: "email", Duration: 30, Difficulty: model.DifficultyMedium, EnergyCost: 3}
	if got := s.Score(task, 10, 50); !almostEqual(got, 1.0) {
		t.Fatalf("peak medium score = %v, want 2*0.5", got)
	}
}

func TestScoreOffPeakDiscountsHigh(t *testing.T) {
	s := testScorer()
	task := &model.Task{Name: "design", Duration: 60, Difficulty: model.DifficultyHigh, EnergyCost: 5}
	// Off peak (hour 15), energy 30 is above the requirement but below
	// the comfort fraction: 3*0.7 only.
	if got := s.Score(task, 15, 30); !almostEqual(got, 2.1) {
		t.Fatalf("off-peak high score = %v, want 2.1", got)
	}
}

func TestScoreLowEnergyPenalty(t *testing.T) {
	s := testScorer()
	task := &model.Task{Name: "design", Duration: 120, Difficulty: model.DifficultyHigh, EnergyCost: 5}
	// Requires 10, only 5 available: 3*0.7*0.2.
	if got := s.Score(task, 15, 5); !almostEqual(got, 0.42) {
		t.Fatalf("depleted high score = %v, want 0.42", got)
	}
}

func TestScoreLowDifficultyExemptFromPenalty(t *testing.T) {
	s := testScorer()
	task := &model.Task{Name: "sort mail", Duration: 600, Difficulty: model.DifficultyLow, EnergyCost: 1}
	// Requires 10, only 5 available, but LOW is never penalized.
	if got := s.Score(task, 15, 5); !almostEqual(got, 1.0) {
		t.Fatalf("low score = %v, want 1.0", got)
	}
}

func TestScoreStoredOnTask(t *testing.T) {
	s := testScorer()
	task := &model.Task{Name: "x", Duration: 30, Difficulty: model.DifficultyMedium, EnergyCost: 3}
	got := s.Score(task, 15, 50)
	if task.PriorityScore != got {
		t.Fatalf("score not stored on task")
	}
}

func TestQueueOrdersByScoreThenName(t *testing.T) {
	a := &model.Task{Name: "alpha", PriorityScore: 2}
	b := &model.Task{Name: "beta", PriorityScore: 2}
	c := &model.Task{Name: "omega", PriorityScore: 5}

	q := taskQueue{a, b, c}
	heap.Init(&q)

	want := []string{"omega", "alpha", "beta"}
	for _, name := range want {
		got := heap.Pop(&q).(*model.Task)
		if got.Name != name {
			t.Fatalf("pop order: got %q, want %q", got.Name, name)
		}
	}
}
