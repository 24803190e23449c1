package progress

import (
	"github.com/yungbote/buildflow-backend/internal/types"
)

func isCompleted(status string) bool {
	return status == types.StatusCompleted || status == types.TaskStatusDone
}

func isActive(status string) bool {
	return status == types.StatusInProgress || status == types.StatusPending
}

// SyncStatus derives a parent's lifecycle status from its immediate children.
// Precedence: all completed, then all cancelled, then any in
// progress/pending, then Planned. With no children the current status is
// kept. A mix of completed and cancelled children with nothing active falls
// through to Planned; that is the observed behavior and is kept as is.
func SyncStatus(current string, childStatuses []string) string {
	if len(childStatuses) == 0 {
		if current == "" {
			return types.StatusPlanned
		}
		return current
	}
	allCompleted := true
	allCancelled := true
	anyActive := false
	for _, s := range childStatuses {
		if !isCompleted(s) {
			allCompleted = false
		}
		if s != types.StatusCancelled {
			allCancelled = false
		}
		if isActive(s) {
			anyActive = true
		}
	}
	switch {
	case allCompleted:
		return types.StatusCompleted
	case allCancelled:
		return types.StatusCancelled
	case anyActive:
		return types.StatusInProgress
	default:
		return types.StatusPlanned
	}
}

// SyncProjectStatus is SyncStatus with the project-level fallback: a project
// with no sites reports Planned rather than keeping a prior status.
func SyncProjectStatus(childStatuses []string) string {
	if len(childStatuses) == 0 {
		return types.StatusPlanned
	}
	return SyncStatus(types.StatusPlanned, childStatuses)
}

func TaskStatuses(tasks []*types.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		out = append(out, t.Status)
	}
	return out
}

func LotStatuses(lots []*types.Lot) []string {
	out := make([]string, 0, len(lots))
	for _, l := range lots {
		if l == nil {
			continue
		}
		out = append(out, l.Status)
	}
	return out
}

func SiteStatuses(sites []*types.Site) []string {
	out := make([]string, 0, len(sites))
	for _, s := range sites {
		if s == nil {
			continue
		}
		out = append(out, s.Status)
	}
	return out
}
