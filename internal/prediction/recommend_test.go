package prediction

import (
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/buildflow-backend/internal/types"
)

func midAdvancementView(budget float64) ProjectView {
	return ProjectView{
		Project:     &types.Project{ID: uuid.New(), Budget: budget},
		Advancement: 50,
		Now:         fixedNow(),
	}
}

func countByType(recs []Recommendation, typ string) int {
	n := 0
	for _, r := range recs {
		if r.Type == typ {
			n++
		}
	}
	return n
}

func TestRecommendationsNeverEmpty(t *testing.T) {
	engine := testEngine(t, nil)
	recs := engine.Recommendations(
		midAdvancementView(0),
		DelayResult{Level: RiskLow},
		BudgetResult{Level: RiskLow},
		nil,
	)
	if len(recs) == 0 {
		t.Fatal("recommendation list must never be empty")
	}
	if recs[0].Type != RecommendationGeneral {
		t.Fatalf("expected generic fallback recommendation, got %+v", recs[0])
	}
}

func TestDelayRecommendations(t *testing.T) {
	engine := testEngine(t, nil)

	cases := []struct {
		name      string
		delay     DelayResult
		wantCount int
	}{
		{"high_with_big_delay_gets_two", DelayResult{Level: RiskHigh, DaysDelay: 45}, 2},
		{"high_with_small_delay_gets_one", DelayResult{Level: RiskHigh, DaysDelay: 10}, 1},
		{"medium_gets_one", DelayResult{Level: RiskMedium, DaysDelay: 5}, 1},
		{"low_gets_none", DelayResult{Level: RiskLow}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs := engine.Recommendations(midAdvancementView(0), tc.delay, BudgetResult{Level: RiskLow}, nil)
			if got := countByType(recs, RecommendationDelay); got != tc.wantCount {
				t.Fatalf("delay recommendations=%d, want %d", got, tc.wantCount)
			}
		})
	}
}

func TestBudgetRecommendations(t *testing.T) {
	engine := testEngine(t, nil)

	high := engine.Recommendations(midAdvancementView(0), DelayResult{Level: RiskLow}, BudgetResult{Level: RiskHigh, EstimatedOverrun: 5000}, nil)
	if got := countByType(high, RecommendationBudget); got != 2 {
		t.Fatalf("high budget risk recommendations=%d, want 2", got)
	}

	medium := engine.Recommendations(midAdvancementView(0), DelayResult{Level: RiskLow}, BudgetResult{Level: RiskMedium, EstimatedOverrun: 100}, nil)
	if got := countByType(medium, RecommendationBudget); got != 1 {
		t.Fatalf("medium budget risk recommendations=%d, want 1", got)
	}
}

func TestHistoricalRecommendations(t *testing.T) {
	engine := testEngine(t, nil)
	view := midAdvancementView(10000)

	history := []HistoricalProject{
		{Status: types.StatusCompleted, DaysDelay: 20, BudgetOverrun: 2000},
		{Status: types.StatusCompleted, DaysDelay: 30, BudgetOverrun: 1000},
		{Status: types.StatusCancelled, DaysDelay: 500, BudgetOverrun: 99999},
	}
	recs := engine.Recommendations(view, DelayResult{Level: RiskLow}, BudgetResult{Level: RiskLow}, history)

	// Cancelled entries are skipped: mean delay 25 > 15, mean overrun 1500 > 10%
	// of the 10000 budget, so both historical recommendations fire.
	if got := countByType(recs, RecommendationHistorical); got != 2 {
		t.Fatalf("historical recommendations=%d, want 2", got)
	}
	for _, r := range recs {
		if r.Type == RecommendationHistorical && r.BasedOn != 2 {
			t.Fatalf("based_on=%d, want 2 completed projects", r.BasedOn)
		}
	}
}

func TestHistoricalBelowThresholdsSilent(t *testing.T) {
	engine := testEngine(t, nil)
	view := midAdvancementView(100000)
	history := []HistoricalProject{
		{Status: types.StatusCompleted, DaysDelay: 5, BudgetOverrun: 100},
	}
	recs := engine.Recommendations(view, DelayResult{Level: RiskLow}, BudgetResult{Level: RiskLow}, history)
	if got := countByType(recs, RecommendationHistorical); got != 0 {
		t.Fatalf("historical recommendations=%d, want 0", got)
	}
}

func TestGeneralAdvancementRecommendations(t *testing.T) {
	engine := testEngine(t, nil)

	early := ProjectView{Project: &types.Project{ID: uuid.New()}, Advancement: 10, Now: fixedNow()}
	recs := engine.Recommendations(early, DelayResult{Level: RiskLow}, BudgetResult{Level: RiskLow}, nil)
	if got := countByType(recs, RecommendationGeneral); got != 1 {
		t.Fatalf("early project general recommendations=%d, want 1", got)
	}

	late := ProjectView{Project: &types.Project{ID: uuid.New()}, Advancement: 90, Now: fixedNow()}
	recs = engine.Recommendations(late, DelayResult{Level: RiskLow}, BudgetResult{Level: RiskLow}, nil)
	if got := countByType(recs, RecommendationGeneral); got != 1 {
		t.Fatalf("late project general recommendations=%d, want 1", got)
	}
}
