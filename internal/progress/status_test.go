package progress

import (
	"testing"

	"github.com/yungbote/buildflow-backend/internal/types"
)

func TestSyncStatus(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		children []string
		want     string
	}{
		{
			name:     "no_children_keeps_current",
			current:  types.StatusInProgress,
			children: nil,
			want:     types.StatusInProgress,
		},
		{
			name:     "no_children_empty_current_defaults_planned",
			current:  "",
			children: nil,
			want:     types.StatusPlanned,
		},
		{
			name:     "all_completed",
			current:  types.StatusInProgress,
			children: []string{types.StatusCompleted, types.TaskStatusDone},
			want:     types.StatusCompleted,
		},
		{
			name:     "all_cancelled",
			current:  types.StatusInProgress,
			children: []string{types.StatusCancelled, types.StatusCancelled},
			want:     types.StatusCancelled,
		},
		{
			name:     "any_in_progress",
			current:  types.StatusPlanned,
			children: []string{types.TaskStatusTodo, types.StatusInProgress},
			want:     types.StatusInProgress,
		},
		{
			name:     "any_pending",
			current:  types.StatusPlanned,
			children: []string{types.TaskStatusTodo, types.StatusPending},
			want:     types.StatusInProgress,
		},
		{
			// Observed fallthrough, kept deliberately: completed+cancelled mix
			// with nothing active lands on Planned.
			name:     "mixed_completed_cancelled_falls_to_planned",
			current:  types.StatusInProgress,
			children: []string{types.StatusCompleted, types.StatusCancelled},
			want:     types.StatusPlanned,
		},
		{
			name:     "all_todo_is_planned",
			current:  types.StatusCompleted,
			children: []string{types.TaskStatusTodo, types.TaskStatusTodo},
			want:     types.StatusPlanned,
		},
		{
			name:     "completed_precedes_active_check",
			current:  types.StatusPlanned,
			children: []string{types.StatusCompleted},
			want:     types.StatusCompleted,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SyncStatus(tc.current, tc.children)
			if got != tc.want {
				t.Fatalf("SyncStatus(%q, %v)=%q, want %q", tc.current, tc.children, got, tc.want)
			}
		})
	}
}

func TestSyncStatusIdempotent(t *testing.T) {
	children := []string{types.StatusInProgress, types.TaskStatusDone, types.TaskStatusTodo}
	first := SyncStatus(types.StatusPlanned, children)
	second := SyncStatus(first, children)
	if first != second {
		t.Fatalf("SyncStatus not idempotent: %q then %q", first, second)
	}
}

func TestSyncProjectStatusNoSites(t *testing.T) {
	if got := SyncProjectStatus(nil); got != types.StatusPlanned {
		t.Fatalf("SyncProjectStatus(nil)=%q, want Planned", got)
	}
}
