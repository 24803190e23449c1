package services

import (
  "context"
  "fmt"
  "testing"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type fakeProjectRepo struct {
  projects map[uuid.UUID]*types.Project
}

func (f *fakeProjectRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Project) (*types.Project, error) {
  f.projects[row.ID] = row
  return row, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Project, error) {
  p, ok := f.projects[id]
  if !ok {
    return nil, fmt.Errorf("project not found")
  }
  return p, nil
}

func (f *fakeProjectRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Project, error) {
  var out []*types.Project
  for _, p := range f.projects {
    out = append(out, p)
  }
  return out, nil
}

func (f *fakeProjectRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Project) error {
  f.projects[row.ID] = row
  return nil
}

func (f *fakeProjectRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  p, ok := f.projects[id]
  if !ok {
    return fmt.Errorf("project not found")
  }
  if v, ok := fields["status"]; ok {
    p.Status = v.(string)
  }
  return nil
}

func (f *fakeProjectRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  delete(f.projects, id)
  return nil
}

type fakeSiteRepo struct {
  sites  map[uuid.UUID]*types.Site
  getErr error
}

func (f *fakeSiteRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Site) (*types.Site, error) {
  f.sites[row.ID] = row
  return row, nil
}

func (f *fakeSiteRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Site, error) {
  if f.getErr != nil {
    return nil, f.getErr
  }
  s, ok := f.sites[id]
  if !ok {
    return nil, fmt.Errorf("site not found")
  }
  return s, nil
}

func (f *fakeSiteRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Site, error) {
  var out []*types.Site
  for _, s := range f.sites {
    out = append(out, s)
  }
  return out, nil
}

func (f *fakeSiteRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Site, error) {
  var out []*types.Site
  for _, s := range f.sites {
    if s.ProjectID == projectID {
      out = append(out, s)
    }
  }
  return out, nil
}

func (f *fakeSiteRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Site) error {
  f.sites[row.ID] = row
  return nil
}

func (f *fakeSiteRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  s, ok := f.sites[id]
  if !ok {
    return fmt.Errorf("site not found")
  }
  if v, ok := fields["progress"]; ok {
    s.Progress = v.(float64)
  }
  if v, ok := fields["status"]; ok {
    s.Status = v.(string)
  }
  return nil
}

func (f *fakeSiteRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  delete(f.sites, id)
  return nil
}

type fakeLotRepo struct {
  lots map[uuid.UUID]*types.Lot
}

func (f *fakeLotRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Lot) (*types.Lot, error) {
  f.lots[row.ID] = row
  return row, nil
}

func (f *fakeLotRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lot, error) {
  l, ok := f.lots[id]
  if !ok {
    return nil, fmt.Errorf("lot not found")
  }
  return l, nil
}

func (f *fakeLotRepo) GetBySiteID(ctx context.Context, tx *gorm.DB, siteID uuid.UUID) ([]*types.Lot, error) {
  var out []*types.Lot
  for _, l := range f.lots {
    if l.SiteID == siteID {
      out = append(out, l)
    }
  }
  return out, nil
}

func (f *fakeLotRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Lot) error {
  f.lots[row.ID] = row
  return nil
}

func (f *fakeLotRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  l, ok := f.lots[id]
  if !ok {
    return fmt.Errorf("lot not found")
  }
  if v, ok := fields["progress"]; ok {
    l.Progress = v.(float64)
  }
  if v, ok := fields["status"]; ok {
    l.Status = v.(string)
  }
  return nil
}

func (f *fakeLotRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  delete(f.lots, id)
  return nil
}

type fakeTaskRepo struct {
  tasks map[uuid.UUID]*types.Task
}

func (f *fakeTaskRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Task) (*types.Task, error) {
  f.tasks[row.ID] = row
  return row, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Task, error) {
  t, ok := f.tasks[id]
  if !ok {
    return nil, fmt.Errorf("task not found")
  }
  return t, nil
}

func (f *fakeTaskRepo) GetByLotID(ctx context.Context, tx *gorm.DB, lotID uuid.UUID) ([]*types.Task, error) {
  var out []*types.Task
  for _, t := range f.tasks {
    if t.LotID == lotID {
      out = append(out, t)
    }
  }
  return out, nil
}

func (f *fakeTaskRepo) GetByLotIDs(ctx context.Context, tx *gorm.DB, lotIDs []uuid.UUID) ([]*types.Task, error) {
  wanted := make(map[uuid.UUID]bool, len(lotIDs))
  for _, id := range lotIDs {
    wanted[id] = true
  }
  var out []*types.Task
  for _, t := range f.tasks {
    if wanted[t.LotID] {
      out = append(out, t)
    }
  }
  return out, nil
}

func (f *fakeTaskRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Task) error {
  f.tasks[row.ID] = row
  return nil
}

func (f *fakeTaskRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  delete(f.tasks, id)
  return nil
}

type cascadeFixture struct {
  projects *fakeProjectRepo
  sites    *fakeSiteRepo
  lots     *fakeLotRepo
  tasks    *fakeTaskRepo
  service  ProgressService
  project  *types.Project
  site     *types.Site
  lot      *types.Lot
}

func newCascadeFixture(t *testing.T) *cascadeFixture {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  fx := &cascadeFixture{
    projects: &fakeProjectRepo{projects: map[uuid.UUID]*types.Project{}},
    sites:    &fakeSiteRepo{sites: map[uuid.UUID]*types.Site{}},
    lots:     &fakeLotRepo{lots: map[uuid.UUID]*types.Lot{}},
    tasks:    &fakeTaskRepo{tasks: map[uuid.UUID]*types.Task{}},
  }
  fx.service = NewProgressService(nil, log, fx.projects, fx.sites, fx.lots, fx.tasks, nil)

  fx.project = &types.Project{ID: uuid.New(), Name: "Tower", Status: types.StatusPlanned}
  fx.site = &types.Site{ID: uuid.New(), ProjectID: fx.project.ID, Name: "North", Status: types.StatusPlanned}
  fx.lot = &types.Lot{ID: uuid.New(), SiteID: fx.site.ID, Name: "Foundations", Status: types.StatusPlanned}
  fx.projects.projects[fx.project.ID] = fx.project
  fx.sites.sites[fx.site.ID] = fx.site
  fx.lots.lots[fx.lot.ID] = fx.lot
  return fx
}

func (fx *cascadeFixture) addTask(status string) *types.Task {
  task := &types.Task{ID: uuid.New(), LotID: fx.lot.ID, Name: "t", Status: status}
  fx.tasks.tasks[task.ID] = task
  return task
}

func TestCascadeFromLotUpdatesWholeChain(t *testing.T) {
  fx := newCascadeFixture(t)
  fx.addTask(types.TaskStatusDone)
  fx.addTask(types.StatusInProgress)
  fx.addTask(types.TaskStatusTodo)
  fx.addTask(types.TaskStatusTodo)

  if err := fx.service.CascadeFromLot(context.Background(), nil, fx.lot.ID); err != nil {
    t.Fatalf("CascadeFromLot: %v", err)
  }

  if fx.lot.Progress != 25.0 {
    t.Fatalf("lot progress = %v, want 25.0", fx.lot.Progress)
  }
  if fx.lot.Status != types.StatusInProgress {
    t.Fatalf("lot status = %q, want InProgress", fx.lot.Status)
  }
  if fx.site.Progress != 25.0 {
    t.Fatalf("site progress = %v, want 25.0", fx.site.Progress)
  }
  if fx.site.Status != types.StatusInProgress {
    t.Fatalf("site status = %q, want InProgress", fx.site.Status)
  }
  if fx.project.Status != types.StatusInProgress {
    t.Fatalf("project status = %q, want InProgress", fx.project.Status)
  }
}

func TestCascadeAllTasksDoneCompletesChain(t *testing.T) {
  fx := newCascadeFixture(t)
  fx.addTask(types.TaskStatusDone)
  fx.addTask(types.TaskStatusDone)

  if err := fx.service.CascadeFromLot(context.Background(), nil, fx.lot.ID); err != nil {
    t.Fatalf("CascadeFromLot: %v", err)
  }

  if fx.lot.Progress != 100.0 {
    t.Fatalf("lot progress = %v, want 100.0", fx.lot.Progress)
  }
  if fx.lot.Status != types.StatusCompleted {
    t.Fatalf("lot status = %q, want Completed", fx.lot.Status)
  }
  if fx.site.Status != types.StatusCompleted {
    t.Fatalf("site status = %q, want Completed", fx.site.Status)
  }
  if fx.project.Status != types.StatusCompleted {
    t.Fatalf("project status = %q, want Completed", fx.project.Status)
  }
}

func TestCascadeLotWithoutTasksKeepsStoredProgress(t *testing.T) {
  fx := newCascadeFixture(t)
  fx.lot.Progress = 40.0

  if err := fx.service.CascadeFromLot(context.Background(), nil, fx.lot.ID); err != nil {
    t.Fatalf("CascadeFromLot: %v", err)
  }

  if fx.lot.Progress != 40.0 {
    t.Fatalf("lot progress = %v, want stored 40.0", fx.lot.Progress)
  }
  if fx.lot.Status != types.StatusPlanned {
    t.Fatalf("lot status = %q, want Planned", fx.lot.Status)
  }
}

func TestCascadeSiteLoadFailureDoesNotFailLotRecompute(t *testing.T) {
  fx := newCascadeFixture(t)
  fx.addTask(types.TaskStatusDone)
  fx.sites.getErr = fmt.Errorf("site row unavailable")

  if err := fx.service.CascadeFromLot(context.Background(), nil, fx.lot.ID); err != nil {
    t.Fatalf("CascadeFromLot should not surface the site failure, got %v", err)
  }

  // The lot level still recomputed before the climb stopped.
  if fx.lot.Progress != 100.0 {
    t.Fatalf("lot progress = %v, want 100.0", fx.lot.Progress)
  }
  if fx.lot.Status != types.StatusCompleted {
    t.Fatalf("lot status = %q, want Completed", fx.lot.Status)
  }
  // Ancestors keep their prior values.
  if fx.site.Progress != 0 || fx.site.Status != types.StatusPlanned {
    t.Fatalf("site changed despite load failure: progress=%v status=%q", fx.site.Progress, fx.site.Status)
  }
  if fx.project.Status != types.StatusPlanned {
    t.Fatalf("project status = %q, want Planned", fx.project.Status)
  }
}

func TestProjectAdvancementAveragesSites(t *testing.T) {
  fx := newCascadeFixture(t)
  fx.addTask(types.TaskStatusDone)
  fx.addTask(types.TaskStatusTodo)

  // Second site with a fully complete lot.
  site2 := &types.Site{ID: uuid.New(), ProjectID: fx.project.ID, Name: "South", Status: types.StatusPlanned}
  lot2 := &types.Lot{ID: uuid.New(), SiteID: site2.ID, Name: "Frame", Status: types.StatusPlanned}
  fx.sites.sites[site2.ID] = site2
  fx.lots.lots[lot2.ID] = lot2
  done := &types.Task{ID: uuid.New(), LotID: lot2.ID, Name: "t", Status: types.TaskStatusDone}
  fx.tasks.tasks[done.ID] = done

  advancement, err := fx.service.ProjectAdvancement(context.Background(), nil, fx.project.ID)
  if err != nil {
    t.Fatalf("ProjectAdvancement: %v", err)
  }
  // Site one: single lot at 50. Site two: single lot at 100. Mean is 75.
  if advancement != 75.0 {
    t.Fatalf("advancement = %v, want 75.0", advancement)
  }
}

func TestProjectAdvancementZeroWithoutSites(t *testing.T) {
  fx := newCascadeFixture(t)
  delete(fx.sites.sites, fx.site.ID)

  advancement, err := fx.service.ProjectAdvancement(context.Background(), nil, fx.project.ID)
  if err != nil {
    t.Fatalf("ProjectAdvancement: %v", err)
  }
  if advancement != 0 {
    t.Fatalf("advancement = %v, want 0", advancement)
  }
}
