package progress

import (
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/buildflow-backend/internal/types"
)

func tasksWithStatuses(statuses ...string) []*types.Task {
	out := make([]*types.Task, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, &types.Task{ID: uuid.New(), Status: s})
	}
	return out
}

func TestLotProgress(t *testing.T) {
	cases := []struct {
		name   string
		stored float64
		tasks  []*types.Task
		want   float64
	}{
		{
			name:   "one_done_of_four",
			stored: 0,
			tasks:  tasksWithStatuses(types.TaskStatusDone, types.TaskStatusTodo, types.StatusInProgress, types.TaskStatusTodo),
			want:   25.0,
		},
		{
			name:   "no_tasks_keeps_stored_progress",
			stored: 42.5,
			tasks:  nil,
			want:   42.5,
		},
		{
			name:   "nil_tasks_are_skipped",
			stored: 10,
			tasks:  append(tasksWithStatuses(types.TaskStatusDone), nil),
			want:   100.0,
		},
		{
			name:   "all_done",
			stored: 0,
			tasks:  tasksWithStatuses(types.TaskStatusDone, types.TaskStatusDone),
			want:   100.0,
		},
		{
			name:   "two_decimal_rounding",
			stored: 0,
			tasks:  tasksWithStatuses(types.TaskStatusDone, types.TaskStatusTodo, types.TaskStatusTodo),
			want:   33.33,
		},
		{
			name:   "stored_progress_clamped",
			stored: 150,
			tasks:  nil,
			want:   100,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lot := &types.Lot{ID: uuid.New(), Progress: tc.stored}
			got := LotProgress(lot, tc.tasks)
			if got != tc.want {
				t.Fatalf("LotProgress=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestSiteProgressMeanOfLots(t *testing.T) {
	site := &types.Site{ID: uuid.New(), Progress: 10}
	lotA := &types.Lot{ID: uuid.New(), Progress: 25.0}
	lotB := &types.Lot{ID: uuid.New(), Progress: 75.0}

	got := SiteProgress(site, []*types.Lot{lotA, lotB}, map[uuid.UUID][]*types.Task{})
	if got != 50.0 {
		t.Fatalf("SiteProgress=%v, want 50.0", got)
	}
}

func TestSiteProgressNoLotsKeepsStored(t *testing.T) {
	site := &types.Site{ID: uuid.New(), Progress: 33.0}
	if got := SiteProgress(site, nil, nil); got != 33.0 {
		t.Fatalf("SiteProgress=%v, want 33.0", got)
	}
}

func TestSiteProgressUsesRecomputedLots(t *testing.T) {
	// The lot's stored progress says 0 but its tasks say 50; the site must see 50.
	site := &types.Site{ID: uuid.New()}
	lot := &types.Lot{ID: uuid.New(), Progress: 0}
	tasks := map[uuid.UUID][]*types.Task{
		lot.ID: tasksWithStatuses(types.TaskStatusDone, types.TaskStatusTodo),
	}
	if got := SiteProgress(site, []*types.Lot{lot}, tasks); got != 50.0 {
		t.Fatalf("SiteProgress=%v, want 50.0", got)
	}
}

func TestSiteProgressMonotonic(t *testing.T) {
	site := &types.Site{ID: uuid.New()}
	lotA := &types.Lot{ID: uuid.New(), Progress: 20}
	lotB := &types.Lot{ID: uuid.New(), Progress: 40}
	before := SiteProgress(site, []*types.Lot{lotA, lotB}, nil)
	lotB.Progress = 80
	after := SiteProgress(site, []*types.Lot{lotA, lotB}, nil)
	if after < before {
		t.Fatalf("site progress decreased from %v to %v after a lot improved", before, after)
	}
}

func TestProjectAdvancement(t *testing.T) {
	siteA := &types.Site{ID: uuid.New(), Progress: 30}
	siteB := &types.Site{ID: uuid.New(), Progress: 70}

	got := ProjectAdvancement([]*types.Site{siteA, siteB}, nil, nil)
	if got != 50.0 {
		t.Fatalf("ProjectAdvancement=%v, want 50.0", got)
	}
	if got < 0 || got > 100 {
		t.Fatalf("advancement %v out of [0,100]", got)
	}
}

func TestProjectAdvancementNoSites(t *testing.T) {
	if got := ProjectAdvancement(nil, nil, nil); got != 0 {
		t.Fatalf("ProjectAdvancement=%v, want 0", got)
	}
}
