package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type SiteRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Site) (*types.Site, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Site, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Site, error)
  GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Site, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Site) error
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type siteRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSiteRepo(db *gorm.DB, baseLog *logger.Logger) SiteRepo {
  repoLog := baseLog.With("repo", "SiteRepo")
  return &siteRepo{db: db, log: repoLog}
}

func (r *siteRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Site) (*types.Site, error) {
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

func (r *siteRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Site, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Site
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *siteRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Site, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Site
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *siteRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Site, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Site
  if projectID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("project_id = ?", projectID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *siteRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Site) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *siteRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Site{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (r *siteRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Site{}).Error
}
