package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ResourceRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Resource) (*types.Resource, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error)
  GetByKind(ctx context.Context, tx *gorm.DB, kind string) ([]*types.Resource, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Resource) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type resourceRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
  repoLog := baseLog.With("repo", "ResourceRepo")
  return &resourceRepo{db: db, log: repoLog}
}

func (r *resourceRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Resource) (*types.Resource, error) {
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

func (r *resourceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Resource
  if err := transaction.WithContext(ctx).
    Preload("Supplier").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *resourceRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Resource
  if err := transaction.WithContext(ctx).
    Preload("Supplier").
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *resourceRepo) GetByKind(ctx context.Context, tx *gorm.DB, kind string) ([]*types.Resource, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Resource
  if err := transaction.WithContext(ctx).
    Preload("Supplier").
    Where("kind = ?", kind).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *resourceRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Resource) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *resourceRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Resource{}).Error
}
