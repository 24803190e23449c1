package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ProjectRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Project) (*types.Project, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Project, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Project, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Project) error
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type projectRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
  repoLog := baseLog.With("repo", "ProjectRepo")
  return &projectRepo{db: db, log: repoLog}
}

func (r *projectRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Project) (*types.Project, error) {
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

func (r *projectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Project, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Project
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *projectRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Project, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Project
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *projectRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Project) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *projectRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(fields) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Project{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (r *projectRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Project{}).Error
}
