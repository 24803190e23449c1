package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ContactMessageRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.ContactMessage) (*types.ContactMessage, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ContactMessage, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ContactMessage, error)
  MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type contactMessageRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContactMessageRepo(db *gorm.DB, baseLog *logger.Logger) ContactMessageRepo {
  repoLog := baseLog.With("repo", "ContactMessageRepo")
  return &contactMessageRepo{db: db, log: repoLog}
}

func (r *contactMessageRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ContactMessage) (*types.ContactMessage, error) {
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

func (r *contactMessageRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ContactMessage, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.ContactMessage
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *contactMessageRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ContactMessage, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ContactMessage
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *contactMessageRepo) MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.ContactMessage{}).
    Where("id = ?", id).
    Update("is_read", true).Error
}

func (r *contactMessageRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.ContactMessage{}).Error
}
