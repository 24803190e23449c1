package prediction

import (
	"math"

	"github.com/yungbote/buildflow-backend/internal/logger"
)

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

const (
	ModelUsedTrained     = "ml"
	ModelUsedStatistical = "statistical"
)

type DelayResult struct {
	Level      string             `json:"risk_level"`
	Score      float64            `json:"risk_score"`
	DaysDelay  int                `json:"days_delay"`
	Confidence float64            `json:"confidence"`
	ModelUsed  string             `json:"model_used"`
	Factors    map[string]float64 `json:"factors,omitempty"`
}

type BudgetResult struct {
	Level            string  `json:"risk_level"`
	Score            float64 `json:"risk_score"`
	EstimatedOverrun float64 `json:"estimated_overrun"`
	EstimatedTotal   float64 `json:"estimated_total"`
	CurrentSpend     float64 `json:"current_spend"`
	PlannedBudget    float64 `json:"planned_budget"`
	SpendRatio       float64 `json:"spend_ratio"`
	Confidence       float64 `json:"confidence"`
	ModelUsed        string  `json:"model_used"`
}

type RiskResult struct {
	Level      string  `json:"risk_level"`
	Score      float64 `json:"risk_score"`
	Confidence float64 `json:"confidence"`
	ModelUsed  string  `json:"model_used"`
}

// Engine scores delay, budget and composite risk for a project view. The
// trained bundle is optional and immutable; every method degrades through
// the statistical path down to a fixed default, and never returns an error.
type Engine struct {
	bundle *Bundle
	log    *logger.Logger
}

func NewEngine(bundle *Bundle, baseLog *logger.Logger) *Engine {
	return &Engine{bundle: bundle, log: baseLog.With("service", "PredictionEngine")}
}

func levelFor(score float64) string {
	switch {
	case score >= 0.7:
		return RiskHigh
	case score >= 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}

func taskConfidence(taskCount int) float64 {
	confidence := 0.5
	if taskCount > 0 {
		confidence = minf(0.6+float64(taskCount)/20*0.3, 0.95)
	}
	return maxf(confidence, 0.3)
}

func budgetConfidence(advancement, totalBudget float64) float64 {
	confidence := 0.5
	if advancement > 20 {
		confidence = minf(0.5+advancement/100*0.4, 0.9)
	}
	if totalBudget > 0 {
		confidence = maxf(confidence, 0.4)
	}
	return confidence
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func defaultDelayResult() DelayResult {
	return DelayResult{Level: RiskMedium, Score: 0.5, DaysDelay: 0, Confidence: 0.3, ModelUsed: ModelUsedStatistical}
}

// PredictDelayRisk estimates schedule slip for the project.
func (e *Engine) PredictDelayRisk(view ProjectView) DelayResult {
	if view.Project == nil {
		return defaultDelayResult()
	}

	if model := e.bundle.Model(ModelDelay); model != nil {
		if res, ok := e.trainedDelay(model, view); ok {
			return res
		}
	}
	return e.statisticalDelay(view)
}

func (e *Engine) trainedDelay(model *Model, view ProjectView) (DelayResult, bool) {
	features := view.MLFeatures()
	if len(features) == 0 {
		return DelayResult{}, false
	}
	raw, err := model.Predict(features)
	if err != nil {
		e.log.Warn("Trained delay model failed, falling back to statistical path", "error", err)
		return DelayResult{}, false
	}
	daysDelay := int(math.Round(raw))
	if daysDelay < 0 {
		daysDelay = 0
	}
	plannedDuration := maxf(features["planned_duration_days"], 1)
	score := minf(float64(daysDelay)/plannedDuration, 1.0)
	return DelayResult{
		Level:      levelFor(score),
		Score:      round3(score),
		DaysDelay:  daysDelay,
		Confidence: round2(taskConfidence(len(view.Tasks))),
		ModelUsed:  ModelUsedTrained,
	}, true
}

func (e *Engine) statisticalDelay(view ProjectView) DelayResult {
	f := view.HeuristicFeatures()
	if len(f) == 0 {
		return defaultDelayResult()
	}

	score := 0.0
	factors := map[string]float64{}

	gap := f["advancement_gap"]
	switch {
	case gap > 0.2:
		score += 0.4
	case gap > 0.1:
		score += 0.2
	}
	factors["advancement_gap"] = round3(gap)

	overdueRatio := 0.0
	if f["task_count"] > 0 {
		overdueRatio = f["overdue_task_count"] / f["task_count"]
	}
	switch {
	case overdueRatio > 0.3:
		score += 0.3
	case overdueRatio > 0.1:
		score += 0.15
	}
	factors["overdue_task_ratio"] = round3(overdueRatio)

	advancement := f["advancement"]
	remaining := f["planned_duration"] - f["elapsed_days"]
	if remaining > 0 && advancement < 100 {
		requiredDailyRate := (100 - advancement) / remaining
		switch {
		case requiredDailyRate > 2.0:
			score += 0.2
		case requiredDailyRate > 1.0:
			score += 0.1
		}
		factors["required_daily_rate"] = round2(requiredDailyRate)
	}

	score = minf(score, 1.0)

	daysDelay := 0
	if gap > 0 {
		daysDelay = int(gap * f["planned_duration"])
	} else if advancement < 50 && f["elapsed_fraction"] > 0.5 {
		daysDelay = int((0.5 - advancement/100) * remaining)
	}
	if daysDelay < 0 {
		daysDelay = 0
	}

	return DelayResult{
		Level:      levelFor(score),
		Score:      round3(score),
		DaysDelay:  daysDelay,
		Confidence: round2(taskConfidence(int(f["task_count"]))),
		ModelUsed:  ModelUsedStatistical,
		Factors:    factors,
	}
}

// PredictBudgetOverrun estimates overspend risk. The detailed budget record
// wins when present; otherwise planned/spent derive from the project budget
// and the sites' consumed budgets.
func (e *Engine) PredictBudgetOverrun(view ProjectView) BudgetResult {
	if view.Project == nil {
		return BudgetResult{Level: RiskMedium, Score: 0.5, Confidence: 0.3, ModelUsed: ModelUsedStatistical}
	}

	planned := view.Project.Budget
	spent := 0.0
	for _, s := range view.Sites {
		if s == nil {
			continue
		}
		spent += s.BudgetUsed
	}
	if view.Budget != nil {
		if view.Budget.PlannedAmount > 0 {
			planned = view.Budget.PlannedAmount
		}
		if view.Budget.SpentAmount > 0 {
			spent = view.Budget.SpentAmount
		}
	}

	if planned <= 0 {
		return BudgetResult{
			Level:          RiskMedium,
			Score:          0.5,
			EstimatedTotal: round2(view.Project.Budget),
			Confidence:     0.3,
			ModelUsed:      ModelUsedStatistical,
		}
	}

	advancement := clampf(view.Advancement, 0, 100)

	if model := e.bundle.Model(ModelBudget); model != nil {
		if res, ok := e.trainedBudget(model, view, planned, spent, advancement); ok {
			return res
		}
	}
	return e.statisticalBudget(view, planned, spent, advancement)
}

func estimatedOverrun(planned, spent, advancement float64) float64 {
	if advancement > 0 && advancement < 100 {
		projectedSpend := spent / (advancement / 100)
		return maxf(projectedSpend-planned, 0)
	}
	return maxf(spent-planned, 0)
}

func (e *Engine) trainedBudget(model *Model, view ProjectView, planned, spent, advancement float64) (BudgetResult, bool) {
	features := view.MLFeatures()
	if len(features) == 0 {
		return BudgetResult{}, false
	}
	score, err := model.Predict(features)
	if err != nil {
		e.log.Warn("Trained budget model failed, falling back to statistical path", "error", err)
		return BudgetResult{}, false
	}
	overrun := estimatedOverrun(planned, spent, advancement)
	if score > 0.7 {
		overrun *= 1.2
	}
	return BudgetResult{
		Level:            levelFor(score),
		Score:            round3(score),
		EstimatedOverrun: round2(overrun),
		EstimatedTotal:   round2(planned + overrun),
		CurrentSpend:     round2(spent),
		PlannedBudget:    round2(planned),
		SpendRatio:       round3(spent / planned),
		Confidence:       round2(budgetConfidence(advancement, view.Project.Budget)),
		ModelUsed:        ModelUsedTrained,
	}, true
}

func (e *Engine) statisticalBudget(view ProjectView, planned, spent, advancement float64) BudgetResult {
	ratio := spent / planned

	score := 0.0
	switch {
	case ratio > 1.0:
		score += 0.5
	case ratio > 0.9 && advancement < 80:
		score += 0.4
	case ratio > 0.8:
		score += 0.2
	}

	if advancement > 0 {
		spendPerPercent := ratio / (advancement / 100)
		switch {
		case spendPerPercent > 1.5:
			score += 0.3
		case spendPerPercent > 1.2:
			score += 0.15
		}
	}
	score = minf(score, 1.0)

	overrun := estimatedOverrun(planned, spent, advancement)

	return BudgetResult{
		Level:            levelFor(score),
		Score:            round3(score),
		EstimatedOverrun: round2(overrun),
		EstimatedTotal:   round2(planned + overrun),
		CurrentSpend:     round2(spent),
		PlannedBudget:    round2(planned),
		SpendRatio:       round3(ratio),
		Confidence:       round2(budgetConfidence(advancement, view.Project.Budget)),
		ModelUsed:        ModelUsedStatistical,
	}
}

// PredictRisk scores the project's composite risk: the trained risk model
// when available, otherwise the mean of the delay and budget predictions.
func (e *Engine) PredictRisk(view ProjectView) RiskResult {
	if view.Project == nil {
		return RiskResult{Level: RiskMedium, Score: 0.5, Confidence: 0.3, ModelUsed: ModelUsedStatistical}
	}

	if model := e.bundle.Model(ModelRisk); model != nil {
		features := view.MLFeatures()
		if len(features) > 0 {
			score, err := model.Predict(features)
			if err == nil {
				return RiskResult{
					Level:      levelFor(score),
					Score:      round3(score),
					Confidence: round2(taskConfidence(len(view.Tasks))),
					ModelUsed:  ModelUsedTrained,
				}
			}
			e.log.Warn("Trained risk model failed, falling back to statistical path", "error", err)
		}
	}

	delay := e.PredictDelayRisk(view)
	budget := e.PredictBudgetOverrun(view)
	score := (delay.Score + budget.Score) / 2
	confidence := (delay.Confidence + budget.Confidence) / 2
	return RiskResult{
		Level:      levelFor(score),
		Score:      round3(score),
		Confidence: round2(confidence),
		ModelUsed:  ModelUsedStatistical,
	}
}
