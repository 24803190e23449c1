package prediction

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/buildflow-backend/internal/logger"
	"github.com/yungbote/buildflow-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func testEngine(t *testing.T, bundle *Bundle) *Engine {
	t.Helper()
	return NewEngine(bundle, testLogger(t))
}

func manyTasks(n int) []*types.Task {
	out := make([]*types.Task, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &types.Task{ID: uuid.New(), Status: types.TaskStatusTodo})
	}
	return out
}

func TestStatisticalDelayFactors(t *testing.T) {
	// 80 of 100 days elapsed at 40% advancement: gap 0.4 (+0.4), no overdue
	// tasks (+0), required daily rate 60/20=3.0 (+0.2).
	view := ProjectView{
		Project:     datedProject(80, 100),
		Advancement: 40,
		Tasks:       manyTasks(10),
		Now:         fixedNow(),
	}
	res := testEngine(t, nil).PredictDelayRisk(view)

	if res.ModelUsed != ModelUsedStatistical {
		t.Fatalf("model_used=%q, want statistical", res.ModelUsed)
	}
	if res.Score != 0.6 {
		t.Fatalf("score=%v, want 0.6", res.Score)
	}
	if res.Level != RiskMedium {
		t.Fatalf("level=%q, want medium", res.Level)
	}
	if res.DaysDelay != 40 {
		t.Fatalf("days_delay=%v, want 40 (gap 0.4 of 100 days)", res.DaysDelay)
	}
	// 10 tasks: 0.6 + 10/20*0.3 = 0.75.
	if res.Confidence != 0.75 {
		t.Fatalf("confidence=%v, want 0.75", res.Confidence)
	}
	if res.Factors["advancement_gap"] != 0.4 {
		t.Fatalf("advancement_gap factor=%v, want 0.4", res.Factors["advancement_gap"])
	}
}

func TestStatisticalDelayScoreBounds(t *testing.T) {
	overdue := fixedNow().Add(-72 * time.Hour)
	tasks := manyTasks(4)
	for _, task := range tasks {
		d := overdue
		task.EndDate = &d
	}
	view := ProjectView{
		Project:     datedProject(99, 100),
		Advancement: 1,
		Tasks:       tasks,
		Now:         fixedNow(),
	}
	res := testEngine(t, nil).PredictDelayRisk(view)
	if res.Score < 0 || res.Score > 1 {
		t.Fatalf("score %v out of [0,1]", res.Score)
	}
	// gap 0.98 (+0.4), all tasks overdue (+0.3), required rate 99/1 (+0.2): capped contributions sum to 0.9.
	if res.Score != 0.9 {
		t.Fatalf("score=%v, want 0.9", res.Score)
	}
	if res.Level != RiskHigh {
		t.Fatalf("level=%q, want high", res.Level)
	}
}

func TestDelayDefaultOnEmptyView(t *testing.T) {
	res := testEngine(t, nil).PredictDelayRisk(ProjectView{})
	want := defaultDelayResult()
	if res.Level != want.Level || res.Score != want.Score || res.Confidence != want.Confidence {
		t.Fatalf("default result mismatch: got %+v", res)
	}
}

func TestStatisticalBudget(t *testing.T) {
	cases := []struct {
		name        string
		budget      float64
		spent       float64
		advancement float64
		wantScore   float64
		wantLevel   string
	}{
		{
			// ratio 0.95 with advancement < 80 (+0.4), spend-per-percent 1.9 (+0.3).
			name:        "nearly_spent_midway",
			budget:      1000,
			spent:       950,
			advancement: 50,
			wantScore:   0.7,
			wantLevel:   RiskHigh,
		},
		{
			// ratio 1.2 (+0.5), spend-per-percent 2.4 (+0.3).
			name:        "overspent",
			budget:      100,
			spent:       120,
			advancement: 50,
			wantScore:   0.8,
			wantLevel:   RiskHigh,
		},
		{
			// ratio 0.85 (+0.2), spend-per-percent 0.94 (no factor).
			name:        "mild_overspend_late",
			budget:      1000,
			spent:       850,
			advancement: 90,
			wantScore:   0.2,
			wantLevel:   RiskLow,
		},
		{
			name:        "healthy",
			budget:      1000,
			spent:       200,
			advancement: 50,
			wantScore:   0,
			wantLevel:   RiskLow,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := ProjectView{
				Project:     &types.Project{ID: uuid.New(), Budget: tc.budget},
				Sites:       []*types.Site{{ID: uuid.New(), BudgetUsed: tc.spent}},
				Advancement: tc.advancement,
				Now:         fixedNow(),
			}
			res := testEngine(t, nil).PredictBudgetOverrun(view)
			if res.Score != tc.wantScore {
				t.Fatalf("score=%v, want %v", res.Score, tc.wantScore)
			}
			if res.Level != tc.wantLevel {
				t.Fatalf("level=%q, want %q", res.Level, tc.wantLevel)
			}
			if res.ModelUsed != ModelUsedStatistical {
				t.Fatalf("model_used=%q, want statistical", res.ModelUsed)
			}
		})
	}
}

func TestBudgetOverrunEstimate(t *testing.T) {
	view := ProjectView{
		Project:     &types.Project{ID: uuid.New(), Budget: 1000},
		Sites:       []*types.Site{{ID: uuid.New(), BudgetUsed: 950}},
		Advancement: 50,
		Now:         fixedNow(),
	}
	res := testEngine(t, nil).PredictBudgetOverrun(view)
	// Projected final spend 950/0.5 = 1900, overrun 900.
	if res.EstimatedOverrun != 900 {
		t.Fatalf("estimated_overrun=%v, want 900", res.EstimatedOverrun)
	}
	if res.EstimatedTotal != 1900 {
		t.Fatalf("estimated_total=%v, want 1900", res.EstimatedTotal)
	}
}

func TestBudgetDetailRecordWins(t *testing.T) {
	view := ProjectView{
		Project:     &types.Project{ID: uuid.New(), Budget: 100},
		Budget:      &types.Budget{PlannedAmount: 2000, SpentAmount: 500},
		Advancement: 50,
		Now:         fixedNow(),
	}
	res := testEngine(t, nil).PredictBudgetOverrun(view)
	if res.PlannedBudget != 2000 {
		t.Fatalf("planned_budget=%v, want 2000 from budget record", res.PlannedBudget)
	}
	if res.CurrentSpend != 500 {
		t.Fatalf("current_spend=%v, want 500 from budget record", res.CurrentSpend)
	}
}

func TestBudgetNoPlannedBudget(t *testing.T) {
	view := ProjectView{
		Project: &types.Project{ID: uuid.New(), Budget: 0},
		Now:     fixedNow(),
	}
	res := testEngine(t, nil).PredictBudgetOverrun(view)
	if res.Level != RiskMedium || res.Score != 0.5 || res.Confidence != 0.3 {
		t.Fatalf("no-budget default mismatch: %+v", res)
	}
}

func TestCompositeRiskIsMeanOfDelayAndBudget(t *testing.T) {
	engine := testEngine(t, nil)
	view := ProjectView{
		Project:     datedProject(80, 100),
		Sites:       []*types.Site{{ID: uuid.New(), BudgetUsed: 950}},
		Advancement: 40,
		Tasks:       manyTasks(10),
		Now:         fixedNow(),
	}
	view.Project.Budget = 1000

	delay := engine.PredictDelayRisk(view)
	budget := engine.PredictBudgetOverrun(view)
	risk := engine.PredictRisk(view)

	want := round3((delay.Score + budget.Score) / 2)
	if risk.Score != want {
		t.Fatalf("composite score=%v, want %v", risk.Score, want)
	}
	if risk.Level != levelFor(want) {
		t.Fatalf("composite level=%q inconsistent with score %v", risk.Level, want)
	}
}

func TestRiskDefaultOnEmptyView(t *testing.T) {
	res := testEngine(t, nil).PredictRisk(ProjectView{})
	if res.Level != RiskMedium || res.Score != 0.5 || res.Confidence != 0.3 {
		t.Fatalf("default risk mismatch: %+v", res)
	}
}

func TestLevelMapping(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.0, RiskLow},
		{0.39, RiskLow},
		{0.4, RiskMedium},
		{0.69, RiskMedium},
		{0.7, RiskHigh},
		{1.0, RiskHigh},
	}
	for _, tc := range cases {
		if got := levelFor(tc.score); got != tc.want {
			t.Fatalf("levelFor(%v)=%q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestTaskConfidence(t *testing.T) {
	if got := taskConfidence(0); got != 0.5 {
		t.Fatalf("taskConfidence(0)=%v, want 0.5", got)
	}
	// Results reach callers through round2, so compare the rounded value.
	if got := round2(taskConfidence(20)); got != 0.9 {
		t.Fatalf("round2(taskConfidence(20))=%v, want 0.9", got)
	}
	if got := taskConfidence(1000); got != 0.95 {
		t.Fatalf("taskConfidence(1000)=%v, want cap 0.95", got)
	}
}
