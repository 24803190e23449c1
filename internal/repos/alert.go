package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type AlertRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Alert) (*types.Alert, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Alert, error)
  GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Alert, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Alert, error)
  GetByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Alert, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Alert) error
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type alertRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAlertRepo(db *gorm.DB, baseLog *logger.Logger) AlertRepo {
  repoLog := baseLog.With("repo", "AlertRepo")
  return &alertRepo{db: db, log: repoLog}
}

func (r *alertRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Alert) (*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil, nil
  }

  if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
    return nil, err
  }
  return row, nil
}

func (r *alertRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Alert
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *alertRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Alert
  if err := transaction.WithContext(ctx).
    Where("project_id = ?", projectID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *alertRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Alert
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *alertRepo) GetByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Alert
  if err := transaction.WithContext(ctx).
    Where("status = ?", status).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *alertRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Alert) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *alertRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Alert{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (r *alertRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Alert{}).Error
}
