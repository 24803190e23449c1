package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type SupplierRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Supplier) (*types.Supplier, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Supplier, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Supplier, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Supplier) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type supplierRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
  repoLog := baseLog.With("repo", "SupplierRepo")
  return &supplierRepo{db: db, log: repoLog}
}

func (r *supplierRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Supplier) (*types.Supplier, error) {
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

func (r *supplierRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Supplier, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Supplier
  if err := transaction.WithContext(ctx).
    Preload("Resources").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *supplierRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Supplier, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Supplier
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *supplierRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Supplier) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *supplierRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Supplier{}).Error
}
