package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type LotRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Lot) (*types.Lot, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lot, error)
  GetBySiteID(ctx context.Context, tx *gorm.DB, siteID uuid.UUID) ([]*types.Lot, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Lot) error
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type lotRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLotRepo(db *gorm.DB, baseLog *logger.Logger) LotRepo {
  repoLog := baseLog.With("repo", "LotRepo")
  return &lotRepo{db: db, log: repoLog}
}

func (r *lotRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Lot) (*types.Lot, error) {
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

func (r *lotRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lot, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Lot
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *lotRepo) GetBySiteID(ctx context.Context, tx *gorm.DB, siteID uuid.UUID) ([]*types.Lot, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Lot
  if siteID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("site_id = ?", siteID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *lotRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Lot) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *lotRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Lot{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (r *lotRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Lot{}).Error
}
