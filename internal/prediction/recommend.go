package prediction

import (
	"fmt"

	"github.com/yungbote/buildflow-backend/internal/types"
)

const (
	RecommendationDelay      = "delay"
	RecommendationBudget     = "budget"
	RecommendationHistorical = "historical"
	RecommendationGeneral    = "general"
)

type Recommendation struct {
	Type             string  `json:"type"`
	Priority         string  `json:"priority"`
	Message          string  `json:"message"`
	Action           string  `json:"action"`
	EstimatedDelay   int     `json:"estimated_delay,omitempty"`
	EstimatedOverrun float64 `json:"estimated_overrun,omitempty"`
	BasedOn          int     `json:"based_on,omitempty"`
}

// HistoricalProject is one completed-project summary from the optional
// history feed.
type HistoricalProject struct {
	Status        string  `json:"status"`
	DaysDelay     float64 `json:"days_delay"`
	BudgetOverrun float64 `json:"budget_overrun"`
}

func genericRecommendation() Recommendation {
	return Recommendation{
		Type:     RecommendationGeneral,
		Priority: "low",
		Message:  "Monitor project progress regularly",
		Action:   "Maintain regular communication with the team",
	}
}

// Recommendations turns the risk results (and optional history) into ranked,
// actionable advice. The returned list is never empty.
func (e *Engine) Recommendations(view ProjectView, delay DelayResult, budget BudgetResult, history []HistoricalProject) []Recommendation {
	recs := []Recommendation{}

	switch delay.Level {
	case RiskHigh:
		recs = append(recs, Recommendation{
			Type:           RecommendationDelay,
			Priority:       "high",
			Message:        fmt.Sprintf("High risk of delay, estimated at %d days", delay.DaysDelay),
			Action:         "Revise the planning and increase resources",
			EstimatedDelay: delay.DaysDelay,
		})
		if delay.DaysDelay > 30 {
			recs = append(recs, Recommendation{
				Type:           RecommendationDelay,
				Priority:       "high",
				Message:        "Significant delay expected, immediate intervention required",
				Action:         "Reorder priorities and evaluate acceleration options",
				EstimatedDelay: delay.DaysDelay,
			})
		}
	case RiskMedium:
		recs = append(recs, Recommendation{
			Type:           RecommendationDelay,
			Priority:       "medium",
			Message:        fmt.Sprintf("Moderate risk of delay, estimated at %d days", delay.DaysDelay),
			Action:         "Monitor progress closely and anticipate slips",
			EstimatedDelay: delay.DaysDelay,
		})
	}

	switch budget.Level {
	case RiskHigh:
		recs = append(recs, Recommendation{
			Type:             RecommendationBudget,
			Priority:         "high",
			Message:          fmt.Sprintf("Budget overrun estimated at %.2f", budget.EstimatedOverrun),
			Action:           "Revise costs and identify possible savings",
			EstimatedOverrun: budget.EstimatedOverrun,
		})
		recs = append(recs, Recommendation{
			Type:             RecommendationBudget,
			Priority:         "high",
			Message:          "Optimize resources and negotiate supplier prices",
			Action:           "Review contracts and look for cheaper alternatives",
			EstimatedOverrun: budget.EstimatedOverrun,
		})
	case RiskMedium:
		recs = append(recs, Recommendation{
			Type:             RecommendationBudget,
			Priority:         "medium",
			Message:          fmt.Sprintf("Moderate risk of overrun, estimated at %.2f", budget.EstimatedOverrun),
			Action:           "Monitor spending and control costs",
			EstimatedOverrun: budget.EstimatedOverrun,
		})
	}

	recs = append(recs, historicalRecommendations(view, history)...)

	advancement := clampf(view.Advancement, 0, 100)
	if advancement < 30 {
		recs = append(recs, Recommendation{
			Type:     RecommendationGeneral,
			Priority: "medium",
			Message:  "Project in its initial phase, establish clear milestones",
			Action:   "Define measurable intermediate objectives",
		})
	} else if advancement > 80 {
		recs = append(recs, Recommendation{
			Type:     RecommendationGeneral,
			Priority: "low",
			Message:  "Project well advanced, keep the pace",
			Action:   "Continue monitoring and prepare the closeout",
		})
	}

	if len(recs) == 0 {
		recs = append(recs, genericRecommendation())
	}
	return recs
}

func historicalRecommendations(view ProjectView, history []HistoricalProject) []Recommendation {
	completed := make([]HistoricalProject, 0, len(history))
	for _, h := range history {
		if h.Status == types.StatusCompleted {
			completed = append(completed, h)
		}
	}
	if len(completed) == 0 {
		return nil
	}

	var recs []Recommendation
	meanDelay := 0.0
	meanOverrun := 0.0
	for _, h := range completed {
		meanDelay += h.DaysDelay
		meanOverrun += h.BudgetOverrun
	}
	meanDelay /= float64(len(completed))
	meanOverrun /= float64(len(completed))

	if meanDelay > 15 {
		recs = append(recs, Recommendation{
			Type:     RecommendationHistorical,
			Priority: "medium",
			Message:  fmt.Sprintf("Comparable projects averaged %d days of delay", int(meanDelay)),
			Action:   "Apply lessons learned and adjust the planning",
			BasedOn:  len(completed),
		})
	}
	if view.Project != nil && meanOverrun > view.Project.Budget*0.1 {
		recs = append(recs, Recommendation{
			Type:             RecommendationHistorical,
			Priority:         "medium",
			Message:          fmt.Sprintf("Comparable projects averaged %.2f of budget overrun", meanOverrun),
			Action:           "Allocate an additional safety margin",
			BasedOn:          len(completed),
			EstimatedOverrun: round2(meanOverrun),
		})
	}
	return recs
}
