package prediction

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/buildflow-backend/internal/types"
)

// testBundleJSON exercises both estimator heads: a linear delay model whose
// prediction is half the planned duration, a logistic budget model pinned
// high, and a logistic risk model pinned to 0.5.
const testBundleJSON = `{
  "delay": {
    "feature_names": ["planned_duration_days"],
    "scaler": {"mean": [0], "scale": [1]},
    "type": "linear",
    "coef": [0.5],
    "intercept": 0
  },
  "budget": {
    "feature_names": ["planned_budget"],
    "scaler": {"mean": [0], "scale": [1]},
    "type": "logistic",
    "coef": [0],
    "intercept": 2.0
  },
  "risk": {
    "feature_names": ["experience_score"],
    "scaler": {"mean": [0], "scale": [1]},
    "type": "logistic",
    "coef": [0],
    "intercept": 0
  }
}`

func loadTestBundle(t *testing.T) *Bundle {
	t.Helper()
	bundle, err := ParseBundle([]byte(testBundleJSON), nil)
	if err != nil {
		t.Fatalf("ParseBundle: %v", err)
	}
	return bundle
}

func TestParseBundleRejectsMissingKey(t *testing.T) {
	partial := `{"delay": {"feature_names": ["x"], "scaler": {"mean": [0], "scale": [1]}, "type": "linear", "coef": [1], "intercept": 0}}`
	if _, err := ParseBundle([]byte(partial), nil); err == nil {
		t.Fatal("expected error for bundle missing budget/risk keys")
	}
}

func TestParseBundleRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseBundle([]byte("{not json"), nil); err == nil {
		t.Fatal("expected error for malformed bundle")
	}
}

func TestParseBundleRejectsShapeMismatch(t *testing.T) {
	bad := `{
    "delay": {"feature_names": ["a", "b"], "scaler": {"mean": [0], "scale": [1]}, "type": "linear", "coef": [1, 2], "intercept": 0},
    "budget": {"feature_names": ["a"], "scaler": {"mean": [0], "scale": [1]}, "type": "logistic", "coef": [1], "intercept": 0},
    "risk": {"feature_names": ["a"], "scaler": {"mean": [0], "scale": [1]}, "type": "logistic", "coef": [1], "intercept": 0}
  }`
	if _, err := ParseBundle([]byte(bad), nil); err == nil {
		t.Fatal("expected error for scaler/coef length mismatch")
	}
}

func TestLoadBundleMissingFile(t *testing.T) {
	if _, err := LoadBundle(filepath.Join(t.TempDir(), "nope.json"), nil); err == nil {
		t.Fatal("expected error for missing bundle file")
	}
}

func TestLoadBundleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.json")
	if err := os.WriteFile(path, []byte(testBundleJSON), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	bundle, err := LoadBundle(path, nil)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if bundle.Model(ModelDelay) == nil || bundle.Model(ModelBudget) == nil || bundle.Model(ModelRisk) == nil {
		t.Fatal("loaded bundle missing models")
	}
}

func TestModelPredictLogistic(t *testing.T) {
	bundle := loadTestBundle(t)
	got, err := bundle.Model(ModelBudget).Predict(map[string]float64{"planned_budget": 123})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := 1 / (1 + math.Exp(-2.0))
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("logistic prediction=%v, want %v", got, want)
	}
}

func TestTrainedDelayPath(t *testing.T) {
	view := ProjectView{
		Project:     datedProject(10, 100),
		Advancement: 10,
		Tasks:       manyTasks(4),
		Now:         fixedNow(),
	}
	res := testEngine(t, loadTestBundle(t)).PredictDelayRisk(view)
	if res.ModelUsed != ModelUsedTrained {
		t.Fatalf("model_used=%q, want trained", res.ModelUsed)
	}
	// Linear head: 0.5 * planned_duration_days(100) = 50 days, score 50/100.
	if res.DaysDelay != 50 {
		t.Fatalf("days_delay=%v, want 50", res.DaysDelay)
	}
	if res.Score != 0.5 {
		t.Fatalf("score=%v, want 0.5", res.Score)
	}
	if res.Level != RiskMedium {
		t.Fatalf("level=%q, want medium", res.Level)
	}
}

func TestTrainedBudgetInflatesHighRiskOverrun(t *testing.T) {
	view := ProjectView{
		Project:     &types.Project{ID: uuid.New(), Budget: 1000},
		Sites:       []*types.Site{{ID: uuid.New(), BudgetUsed: 600}},
		Advancement: 50,
		Now:         fixedNow(),
	}
	res := testEngine(t, loadTestBundle(t)).PredictBudgetOverrun(view)
	if res.ModelUsed != ModelUsedTrained {
		t.Fatalf("model_used=%q, want trained", res.ModelUsed)
	}
	if res.Level != RiskHigh {
		t.Fatalf("level=%q, want high (logistic ~0.88)", res.Level)
	}
	// Projected overrun 600/0.5-1000=200, inflated by 1.2 for high risk.
	if res.EstimatedOverrun != 240 {
		t.Fatalf("estimated_overrun=%v, want 240", res.EstimatedOverrun)
	}
}

func TestFallbackShapeMatchesTrainedShape(t *testing.T) {
	// Removing the bundle must not change the response shape, only the
	// model_used field and possibly the numbers.
	view := ProjectView{
		Project:     datedProject(80, 100),
		Advancement: 40,
		Tasks:       manyTasks(10),
		Now:         fixedNow(),
	}
	view.Project.Budget = 1000

	trained := testEngine(t, loadTestBundle(t)).PredictRisk(view)
	fallback := testEngine(t, nil).PredictRisk(view)

	if trained.ModelUsed != ModelUsedTrained || fallback.ModelUsed != ModelUsedStatistical {
		t.Fatalf("model_used mismatch: %q / %q", trained.ModelUsed, fallback.ModelUsed)
	}
	for _, res := range []RiskResult{trained, fallback} {
		if res.Score < 0 || res.Score > 1 {
			t.Fatalf("score %v out of [0,1]", res.Score)
		}
		if res.Level == "" || res.Confidence <= 0 {
			t.Fatalf("incomplete result: %+v", res)
		}
	}
}
