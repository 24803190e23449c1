package prediction

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/buildflow-backend/internal/types"
)

func fixedNow() time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
}

func datedProject(daysElapsed, plannedDays int) *types.Project {
	start := fixedNow().Add(-time.Duration(daysElapsed) * 24 * time.Hour)
	end := start.Add(time.Duration(plannedDays) * 24 * time.Hour)
	return &types.Project{ID: uuid.New(), Name: "tower", Priority: types.PriorityMedium, StartDate: &start, EndDate: &end}
}

func TestHeuristicFeaturesAdvancementGap(t *testing.T) {
	view := ProjectView{
		Project:     datedProject(80, 100),
		Advancement: 40,
		Now:         fixedNow(),
	}
	f := view.HeuristicFeatures()
	if f["planned_duration"] != 100 {
		t.Fatalf("planned_duration=%v, want 100", f["planned_duration"])
	}
	if f["elapsed_days"] != 80 {
		t.Fatalf("elapsed_days=%v, want 80", f["elapsed_days"])
	}
	if f["elapsed_fraction"] != 0.8 {
		t.Fatalf("elapsed_fraction=%v, want 0.8", f["elapsed_fraction"])
	}
	if got := f["advancement_gap"]; got < 0.399 || got > 0.401 {
		t.Fatalf("advancement_gap=%v, want 0.4", got)
	}
}

func TestHeuristicFeaturesDefaultsWithoutDates(t *testing.T) {
	view := ProjectView{
		Project: &types.Project{ID: uuid.New(), Budget: 0},
		Now:     fixedNow(),
	}
	f := view.HeuristicFeatures()
	if f["planned_duration"] != 365 {
		t.Fatalf("planned_duration=%v, want 365", f["planned_duration"])
	}
	if f["elapsed_fraction"] != 0 {
		t.Fatalf("elapsed_fraction=%v, want 0", f["elapsed_fraction"])
	}
	// A zero budget still floors to 1 so ratios stay defined.
	if f["total_budget"] != 1 {
		t.Fatalf("total_budget=%v, want 1", f["total_budget"])
	}
}

func TestHeuristicFeaturesSpendRatio(t *testing.T) {
	view := ProjectView{
		Project: &types.Project{ID: uuid.New(), Budget: 1000},
		Sites: []*types.Site{
			{ID: uuid.New(), BudgetUsed: 300},
			{ID: uuid.New(), BudgetUsed: 450},
		},
		Now: fixedNow(),
	}
	f := view.HeuristicFeatures()
	if f["spent_budget"] != 750 {
		t.Fatalf("spent_budget=%v, want 750", f["spent_budget"])
	}
	if f["spend_ratio"] != 0.75 {
		t.Fatalf("spend_ratio=%v, want 0.75", f["spend_ratio"])
	}
}

func TestMLFeatures(t *testing.T) {
	overdue := fixedNow().Add(-48 * time.Hour)
	view := ProjectView{
		Project:     datedProject(50, 200),
		Advancement: 30,
		Now:         fixedNow(),
		Tasks: []*types.Task{
			{ID: uuid.New(), Status: types.TaskStatusTodo},
			{ID: uuid.New(), Status: types.TaskStatusTodo, EndDate: &overdue},
			{ID: uuid.New(), Status: types.TaskStatusDone, EndDate: &overdue},
			{ID: uuid.New(), Status: types.StatusInProgress},
			{ID: uuid.New(), Status: types.TaskStatusTodo},
			{ID: uuid.New(), Status: types.TaskStatusTodo},
		},
	}
	view.Project.Priority = types.PriorityHigh
	view.Project.Budget = 50000

	f := view.MLFeatures()
	if f["planned_budget"] != 50000 {
		t.Fatalf("planned_budget=%v, want 50000", f["planned_budget"])
	}
	if f["planned_duration_days"] != 200 {
		t.Fatalf("planned_duration_days=%v, want 200", f["planned_duration_days"])
	}
	// 5 active tasks -> 5/5 = 1 worker.
	if f["worker_count_estimate"] != 1 {
		t.Fatalf("worker_count_estimate=%v, want 1", f["worker_count_estimate"])
	}
	// One overdue task that is not done.
	if f["incident_count_estimate"] != 1 {
		t.Fatalf("incident_count_estimate=%v, want 1", f["incident_count_estimate"])
	}
	// High priority (3) * 10 + 30/10 = 33.
	if f["experience_score"] != 33 {
		t.Fatalf("experience_score=%v, want 33", f["experience_score"])
	}
}

func TestMLFeaturesFloorsAndDefaults(t *testing.T) {
	view := ProjectView{Project: &types.Project{ID: uuid.New()}, Now: fixedNow()}
	f := view.MLFeatures()
	if f["planned_budget"] != 1 {
		t.Fatalf("planned_budget=%v, want floor 1", f["planned_budget"])
	}
	if f["planned_duration_days"] != 365 {
		t.Fatalf("planned_duration_days=%v, want default 365", f["planned_duration_days"])
	}
	if f["worker_count_estimate"] != 1 {
		t.Fatalf("worker_count_estimate=%v, want floor 1", f["worker_count_estimate"])
	}
	if f["predicted_delay_days"] != 0 {
		t.Fatalf("predicted_delay_days=%v, want 0 without dates", f["predicted_delay_days"])
	}
}

func TestFeaturesEmptyOnNilProject(t *testing.T) {
	view := ProjectView{}
	if got := len(view.MLFeatures()); got != 0 {
		t.Fatalf("MLFeatures on nil project returned %d entries, want 0", got)
	}
	if got := len(view.HeuristicFeatures()); got != 0 {
		t.Fatalf("HeuristicFeatures on nil project returned %d entries, want 0", got)
	}
}
