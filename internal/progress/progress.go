package progress

import (
	"math"

	"github.com/google/uuid"

	"github.com/yungbote/buildflow-backend/internal/types"
)

// Round2 is the single rounding rule for every derived progress value.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// LotProgress derives a lot's progress from its tasks: done tasks over total,
// as a percentage. A lot with no tasks keeps its stored progress so manual
// values set before any task exists survive recomputation.
func LotProgress(lot *types.Lot, tasks []*types.Task) float64 {
	if lot == nil {
		return 0
	}
	valid := 0
	done := 0
	for _, t := range tasks {
		if t == nil {
			continue
		}
		valid++
		if t.Status == types.TaskStatusDone || t.Status == types.StatusCompleted {
			done++
		}
	}
	if valid == 0 {
		return clampPercent(lot.Progress)
	}
	return Round2(float64(done) / float64(valid) * 100)
}

// SiteProgress derives a site's progress as the mean of its lots' recomputed
// progress. Lots that cannot be computed are excluded from both the sum and
// the count; with no lots (or none computable) the stored progress stands.
func SiteProgress(site *types.Site, lots []*types.Lot, tasksByLot map[uuid.UUID][]*types.Task) float64 {
	if site == nil {
		return 0
	}
	total := 0.0
	count := 0
	for _, lot := range lots {
		if lot == nil {
			continue
		}
		total += LotProgress(lot, tasksByLot[lot.ID])
		count++
	}
	if count == 0 {
		return clampPercent(site.Progress)
	}
	return Round2(total / float64(count))
}

// ProjectAdvancement derives a project's advancement as the mean of its
// sites' recomputed progress. It is never stored; 0 when there are no sites.
func ProjectAdvancement(sites []*types.Site, lotsBySite map[uuid.UUID][]*types.Lot, tasksByLot map[uuid.UUID][]*types.Task) float64 {
	total := 0.0
	count := 0
	for _, s := range sites {
		if s == nil {
			continue
		}
		total += SiteProgress(s, lotsBySite[s.ID], tasksByLot)
		count++
	}
	if count == 0 {
		return 0
	}
	return Round2(total / float64(count))
}
