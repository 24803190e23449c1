package prediction

import (
	"time"

	"github.com/yungbote/buildflow-backend/internal/types"
)

// ProjectView is the flat, in-memory snapshot the engine works on: the
// project with all sites and all tasks under it, the optional detailed
// budget, and the derived advancement from the aggregation pass.
type ProjectView struct {
	Project     *types.Project
	Sites       []*types.Site
	Tasks       []*types.Task
	Budget      *types.Budget
	Advancement float64
	Now         time.Time
}

func (v ProjectView) now() time.Time {
	if v.Now.IsZero() {
		return time.Now()
	}
	return v.Now
}

func priorityWeight(priority string) float64 {
	switch priority {
	case types.PriorityHigh:
		return 3
	case types.PriorityLow:
		return 1
	default:
		return 2
	}
}

func (v ProjectView) overdueTaskCount() int {
	now := v.now()
	n := 0
	for _, t := range v.Tasks {
		if t == nil || t.EndDate == nil {
			continue
		}
		if t.EndDate.Before(now) && t.Status != types.TaskStatusDone && t.Status != types.StatusCompleted {
			n++
		}
	}
	return n
}

func (v ProjectView) activeTaskCount() int {
	n := 0
	for _, t := range v.Tasks {
		if t == nil {
			continue
		}
		if t.Status != types.TaskStatusDone && t.Status != types.StatusCompleted {
			n++
		}
	}
	return n
}

func (v ProjectView) completedTaskCount() int {
	n := 0
	for _, t := range v.Tasks {
		if t == nil {
			continue
		}
		if t.Status == types.TaskStatusDone || t.Status == types.StatusCompleted {
			n++
		}
	}
	return n
}

// MLFeatures builds the feature map consumed by the trained models, in the
// bundle's vocabulary. An unusable view yields an empty map; callers treat
// that as "insufficient data".
func (v ProjectView) MLFeatures() map[string]float64 {
	if v.Project == nil {
		return map[string]float64{}
	}
	f := make(map[string]float64, 6)

	f["planned_budget"] = maxf(v.Project.Budget, 1)

	plannedDuration := 365.0
	if v.Project.StartDate != nil && v.Project.EndDate != nil {
		plannedDuration = maxf(v.Project.EndDate.Sub(*v.Project.StartDate).Hours()/24, 1)
	}
	f["planned_duration_days"] = plannedDuration

	// Rough crew-size estimate: one worker per five active tasks.
	f["worker_count_estimate"] = maxf(float64(v.activeTaskCount()/5), 1)

	f["incident_count_estimate"] = float64(v.overdueTaskCount())

	advancement := clampf(v.Advancement, 0, 100)
	f["experience_score"] = maxf(priorityWeight(v.Project.Priority)*10+advancement/10, 1)

	f["predicted_delay_days"] = v.predictedDelayDays(plannedDuration, advancement)

	return f
}

func (v ProjectView) predictedDelayDays(plannedDuration, advancement float64) float64 {
	if v.Project.StartDate == nil || v.Project.EndDate == nil {
		return 0
	}
	elapsed := v.now().Sub(*v.Project.StartDate).Hours() / 24
	if elapsed < 0 {
		elapsed = 0
	}
	elapsedFraction := minf(elapsed/plannedDuration, 1.0)
	gap := elapsedFraction - advancement/100
	if gap > 0 {
		return float64(int(gap * plannedDuration))
	}
	remaining := plannedDuration - elapsed
	if advancement < 50 && elapsedFraction > 0.5 {
		return maxf(float64(int((0.5-advancement/100)*remaining)), 0)
	}
	return 0
}

// HeuristicFeatures builds the map the statistical fallback scores against.
func (v ProjectView) HeuristicFeatures() map[string]float64 {
	if v.Project == nil {
		return map[string]float64{}
	}
	f := make(map[string]float64, 13)

	if v.Project.StartDate != nil && v.Project.EndDate != nil {
		plannedDuration := maxf(v.Project.EndDate.Sub(*v.Project.StartDate).Hours()/24, 1)
		elapsed := maxf(v.now().Sub(*v.Project.StartDate).Hours()/24, 0)
		f["planned_duration"] = plannedDuration
		f["elapsed_days"] = float64(int(elapsed))
		f["elapsed_fraction"] = minf(float64(int(elapsed))/plannedDuration, 1.0)
	} else {
		f["planned_duration"] = 365
		f["elapsed_days"] = 0
		f["elapsed_fraction"] = 0
	}

	spent := 0.0
	for _, s := range v.Sites {
		if s == nil {
			continue
		}
		spent += s.BudgetUsed
	}
	f["total_budget"] = maxf(v.Project.Budget, 1)
	f["spent_budget"] = spent
	f["spend_ratio"] = spent / f["total_budget"]

	advancement := clampf(v.Advancement, 0, 100)
	f["advancement"] = advancement
	f["advancement_gap"] = f["elapsed_fraction"] - advancement/100

	f["site_count"] = float64(len(v.Sites))
	f["task_count"] = float64(len(v.Tasks))
	f["completed_task_count"] = float64(v.completedTaskCount())
	f["overdue_task_count"] = float64(v.overdueTaskCount())
	f["priority_weight"] = priorityWeight(v.Project.Priority)

	return f
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
