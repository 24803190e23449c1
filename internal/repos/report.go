package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ReportRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Report) (*types.Report, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Report, error)
  GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Report, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Report, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Report) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type reportRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
  repoLog := baseLog.With("repo", "ReportRepo")
  return &reportRepo{db: db, log: repoLog}
}

func (r *reportRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Report) (*types.Report, error) {
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

func (r *reportRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Report
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *reportRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Report
  if err := transaction.WithContext(ctx).
    Where("project_id = ?", projectID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *reportRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Report
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *reportRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Report) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *reportRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Report{}).Error
}
