package services

import (
  "context"
  "strings"
  "testing"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/prediction"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type fakeBudgetRepo struct {
  budgets map[uuid.UUID]*types.Budget
}

func (f *fakeBudgetRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Budget) (*types.Budget, error) {
  f.budgets[row.ProjectID] = row
  return row, nil
}

func (f *fakeBudgetRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Budget, error) {
  for _, b := range f.budgets {
    if b.ID == id {
      return b, nil
    }
  }
  return nil, gorm.ErrRecordNotFound
}

func (f *fakeBudgetRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Budget, error) {
  b, ok := f.budgets[projectID]
  if !ok {
    return nil, gorm.ErrRecordNotFound
  }
  return b, nil
}

func (f *fakeBudgetRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Budget, error) {
  var out []*types.Budget
  for _, b := range f.budgets {
    out = append(out, b)
  }
  return out, nil
}

func (f *fakeBudgetRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Budget) error {
  f.budgets[row.ProjectID] = row
  return nil
}

func (f *fakeBudgetRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Budget) error {
  f.budgets[row.ProjectID] = row
  return nil
}

func (f *fakeBudgetRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  for projectID, b := range f.budgets {
    if b.ID == id {
      delete(f.budgets, projectID)
    }
  }
  return nil
}

type fakeAlertRepo struct {
  alerts map[uuid.UUID]*types.Alert
}

func (f *fakeAlertRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Alert) (*types.Alert, error) {
  f.alerts[row.ID] = row
  return row, nil
}

func (f *fakeAlertRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Alert, error) {
  a, ok := f.alerts[id]
  if !ok {
    return nil, gorm.ErrRecordNotFound
  }
  return a, nil
}

func (f *fakeAlertRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Alert, error) {
  var out []*types.Alert
  for _, a := range f.alerts {
    if a.ProjectID == projectID {
      out = append(out, a)
    }
  }
  return out, nil
}

func (f *fakeAlertRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Alert, error) {
  var out []*types.Alert
  for _, a := range f.alerts {
    out = append(out, a)
  }
  return out, nil
}

func (f *fakeAlertRepo) GetByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Alert, error) {
  var out []*types.Alert
  for _, a := range f.alerts {
    if a.Status == status {
      out = append(out, a)
    }
  }
  return out, nil
}

func (f *fakeAlertRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Alert) error {
  f.alerts[row.ID] = row
  return nil
}

func (f *fakeAlertRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  a, ok := f.alerts[id]
  if !ok {
    return gorm.ErrRecordNotFound
  }
  if v, ok := fields["status"]; ok {
    a.Status = v.(string)
  }
  return nil
}

func (f *fakeAlertRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  delete(f.alerts, id)
  return nil
}

type fakeAIModelRepo struct {
  model *types.AIModel
}

func (f *fakeAIModelRepo) Create(ctx context.Context, tx *gorm.DB, row *types.AIModel) (*types.AIModel, error) {
  f.model = row
  return row, nil
}

func (f *fakeAIModelRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AIModel, error) {
  if f.model == nil || f.model.ID != id {
    return nil, gorm.ErrRecordNotFound
  }
  return f.model, nil
}

func (f *fakeAIModelRepo) GetLatestActive(ctx context.Context, tx *gorm.DB) (*types.AIModel, error) {
  if f.model == nil {
    return nil, gorm.ErrRecordNotFound
  }
  return f.model, nil
}

func (f *fakeAIModelRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AIModel, error) {
  if f.model == nil {
    return nil, nil
  }
  return []*types.AIModel{f.model}, nil
}

func (f *fakeAIModelRepo) Save(ctx context.Context, tx *gorm.DB, row *types.AIModel) error {
  f.model = row
  return nil
}

func (f *fakeAIModelRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  f.model = nil
  return nil
}

func TestAlertGating(t *testing.T) {
  cases := []struct {
    name      string
    score     float64
    threshold float64
    created   bool
    kind      string
  }{
    {name: "well above threshold", score: 0.72, threshold: 0.5, created: true, kind: types.AlertKindCritical},
    {name: "above threshold below critical", score: 0.55, threshold: 0.5, created: true, kind: types.AlertKindWarning},
    {name: "exactly at threshold", score: 0.5, threshold: 0.5, created: true, kind: types.AlertKindWarning},
    {name: "exactly at critical boundary", score: 0.7, threshold: 0.5, created: true, kind: types.AlertKindWarning},
    {name: "below threshold", score: 0.3, threshold: 0.5, created: false},
    {name: "high custom threshold", score: 0.72, threshold: 0.8, created: false},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      created := shouldAlert(tc.score, tc.threshold)
      if created != tc.created {
        t.Fatalf("shouldAlert(%v, %v) = %v, want %v", tc.score, tc.threshold, created, tc.created)
      }
      if !created {
        return
      }
      if kind := alertKindFor(tc.score); kind != tc.kind {
        t.Fatalf("alertKindFor(%v) = %q, want %q", tc.score, kind, tc.kind)
      }
    })
  }
}

func TestAlertDescriptionEmbedsLevelAndScore(t *testing.T) {
  desc := alertDescription(prediction.RiskHigh, 0.72, 0.5)
  if !strings.Contains(desc, prediction.RiskHigh) {
    t.Fatalf("description %q does not name the risk level", desc)
  }
  if !strings.Contains(desc, "0.72") {
    t.Fatalf("description %q does not carry the score", desc)
  }
  if !strings.Contains(desc, "0.50") {
    t.Fatalf("description %q does not carry the threshold", desc)
  }
}

func TestGenerateAlertsBelowThresholdReportsComparison(t *testing.T) {
  fx := newCascadeFixture(t)
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  engine := prediction.NewEngine(nil, log)
  alerts := &fakeAlertRepo{alerts: map[uuid.UUID]*types.Alert{}}
  models := &fakeAIModelRepo{model: &types.AIModel{
    ID:                  uuid.New(),
    Name:                "risk-gate",
    ConfidenceThreshold: 0.99,
    IsActive:            true,
  }}
  svc := NewAnalysisService(
    nil, log, engine, nil,
    fx.projects, fx.sites, fx.lots, fx.tasks,
    &fakeBudgetRepo{budgets: map[uuid.UUID]*types.Budget{}},
    alerts, models, fx.service, 0, 0,
  )

  out, err := svc.GenerateAlerts(context.Background(), fx.project.ID)
  if err != nil {
    t.Fatalf("GenerateAlerts: %v", err)
  }
  if out.Created {
    t.Fatalf("alert created despite threshold 0.99 (score %v)", out.Score)
  }
  if out.Reason != "below_threshold" {
    t.Fatalf("reason = %q, want below_threshold", out.Reason)
  }
  if out.Threshold != 0.99 {
    t.Fatalf("threshold = %v, want the active model's 0.99", out.Threshold)
  }
  if out.Score < 0 || out.Score >= 0.99 {
    t.Fatalf("score = %v, want the computed risk score below the threshold", out.Score)
  }
  if len(alerts.alerts) != 0 {
    t.Fatalf("alert persisted on the below-threshold branch")
  }
}
