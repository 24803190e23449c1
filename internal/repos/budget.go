package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type BudgetRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Budget) (*types.Budget, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Budget, error)
  GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Budget, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Budget, error)
  Upsert(ctx context.Context, tx *gorm.DB, row *types.Budget) error
  Save(ctx context.Context, tx *gorm.DB, row *types.Budget) error
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type budgetRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewBudgetRepo(db *gorm.DB, baseLog *logger.Logger) BudgetRepo {
  repoLog := baseLog.With("repo", "BudgetRepo")
  return &budgetRepo{db: db, log: repoLog}
}

func (r *budgetRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Budget) (*types.Budget, error) {
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

func (r *budgetRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Budget, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Budget
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *budgetRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Budget, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Budget
  if err := transaction.WithContext(ctx).
    Where("project_id = ?", projectID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *budgetRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Budget, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Budget
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *budgetRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Budget) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  // Upsert by unique project_id
  return transaction.WithContext(ctx).
    Where("project_id = ?", row.ProjectID).
    Assign(map[string]interface{}{
      "planned_amount": row.PlannedAmount,
      "spent_amount":   row.SpentAmount,
    }).
    FirstOrCreate(row).Error
}

func (r *budgetRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Budget) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }
  return transaction.WithContext(ctx).Save(row).Error
}

func (r *budgetRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Budget{}).Error
}
