package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type AIModelRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.AIModel) (*types.AIModel, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AIModel, error)
  GetLatestActive(ctx context.Context, tx *gorm.DB) (*types.AIModel, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AIModel, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.AIModel) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type aiModelRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAIModelRepo(db *gorm.DB, baseLog *logger.Logger) AIModelRepo {
  repoLog := baseLog.With("repo", "AIModelRepo")
  return &aiModelRepo{db: db, log: repoLog}
}

func (r *aiModelRepo) Create(ctx context.Context, tx *gorm.DB, row *types.AIModel) (*types.AIModel, error) {
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

func (r *aiModelRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AIModel, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.AIModel
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *aiModelRepo) GetLatestActive(ctx context.Context, tx *gorm.DB) (*types.AIModel, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.AIModel
  if err := transaction.WithContext(ctx).
    Where("is_active = ?", true).
    Order("created_at DESC").
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *aiModelRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AIModel, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AIModel
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *aiModelRepo) Save(ctx context.Context, tx *gorm.DB, row *types.AIModel) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *aiModelRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.AIModel{}).Error
}
