package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type UserTokenRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.UserToken) (*types.UserToken, error)
  GetByRefreshToken(ctx context.Context, tx *gorm.DB, refresh string) (*types.UserToken, error)
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
  DeleteExpired(ctx context.Context, tx *gorm.DB) error
}

type userTokenRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
  repoLog := baseLog.With("repo", "UserTokenRepo")
  return &userTokenRepo{db: db, log: repoLog}
}

func (r *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, row *types.UserToken) (*types.UserToken, error) {
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

func (r *userTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refresh string) (*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.UserToken
  if err := transaction.WithContext(ctx).
    Where("refresh_token = ?", refresh).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *userTokenRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.UserToken{}).Error
}

func (r *userTokenRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Delete(&types.UserToken{}).Error
}

func (r *userTokenRepo) DeleteExpired(ctx context.Context, tx *gorm.DB) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("expires_at < ?", time.Now()).
    Delete(&types.UserToken{}).Error
}
