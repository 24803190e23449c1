package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type AlertService interface {
  DeclareAlert(ctx context.Context, alert *types.Alert) (*types.Alert, error)
  ListAlerts(ctx context.Context) ([]*types.Alert, error)
  ListAlertsByProject(ctx context.Context, projectID uuid.UUID) ([]*types.Alert, error)
  GetAlert(ctx context.Context, id uuid.UUID) (*types.Alert, error)
  UpdateAlertStatus(ctx context.Context, id uuid.UUID, status string) (*types.Alert, error)
  DeleteAlert(ctx context.Context, id uuid.UUID) error
}

type alertService struct {
  db        *gorm.DB
  log       *logger.Logger
  alertRepo repos.AlertRepo
}

func NewAlertService(db *gorm.DB, log *logger.Logger, alertRepo repos.AlertRepo) AlertService {
  serviceLog := log.With("service", "AlertService")
  return &alertService{db: db, log: serviceLog, alertRepo: alertRepo}
}

func (s *alertService) DeclareAlert(ctx context.Context, alert *types.Alert) (*types.Alert, error) {
  if alert.ProjectID == uuid.Nil {
    return nil, fmt.Errorf("Alert requires a project")
  }
  if alert.Description == "" {
    return nil, fmt.Errorf("Alert description is required")
  }
  switch alert.Kind {
  case types.AlertKindInfo, types.AlertKindWarning, types.AlertKindCritical:
  case "":
    alert.Kind = types.AlertKindInfo
  default:
    return nil, fmt.Errorf("Unknown alert kind %q", alert.Kind)
  }
  if alert.Status == "" {
    alert.Status = types.AlertStatusNew
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    alert.ID = uuid.New()
    _, cErr := s.alertRepo.Create(ctx, tx, alert)
    return cErr
  }); err != nil {
    return nil, fmt.Errorf("Failed to create alert: %w", err)
  }
  return alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context) ([]*types.Alert, error) {
  alerts, err := s.alertRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list alerts: %w", err)
  }
  return alerts, nil
}

func (s *alertService) ListAlertsByProject(ctx context.Context, projectID uuid.UUID) ([]*types.Alert, error) {
  alerts, err := s.alertRepo.GetByProjectID(ctx, nil, projectID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list alerts for project: %w", err)
  }
  return alerts, nil
}

func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*types.Alert, error) {
  alert, err := s.alertRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load alert: %w", err)
  }
  return alert, nil
}

func (s *alertService) UpdateAlertStatus(ctx context.Context, id uuid.UUID, status string) (*types.Alert, error) {
  if status == "" {
    return nil, fmt.Errorf("Alert status is required")
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.alertRepo.UpdateFields(ctx, tx, id, map[string]interface{}{"status": status})
  }); err != nil {
    return nil, fmt.Errorf("Failed to update alert: %w", err)
  }
  return s.alertRepo.GetByID(ctx, nil, id)
}

func (s *alertService) DeleteAlert(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.alertRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete alert: %w", dErr)
    }
    return nil
  })
}
