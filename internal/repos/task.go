package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type TaskRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Task) (*types.Task, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Task, error)
  GetByLotID(ctx context.Context, tx *gorm.DB, lotID uuid.UUID) ([]*types.Task, error)
  GetByLotIDs(ctx context.Context, tx *gorm.DB, lotIDs []uuid.UUID) ([]*types.Task, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Task) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type taskRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTaskRepo(db *gorm.DB, baseLog *logger.Logger) TaskRepo {
  repoLog := baseLog.With("repo", "TaskRepo")
  return &taskRepo{db: db, log: repoLog}
}

func (r *taskRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Task) (*types.Task, error) {
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

func (r *taskRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Task, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Task
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *taskRepo) GetByLotID(ctx context.Context, tx *gorm.DB, lotID uuid.UUID) ([]*types.Task, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Task
  if lotID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("lot_id = ?", lotID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *taskRepo) GetByLotIDs(ctx context.Context, tx *gorm.DB, lotIDs []uuid.UUID) ([]*types.Task, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Task
  if len(lotIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("lot_id IN ?", lotIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *taskRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Task) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *taskRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Task{}).Error
}
