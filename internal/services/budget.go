package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/cache"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type BudgetService interface {
  SetProjectBudget(ctx context.Context, projectID uuid.UUID, planned, spent float64) (*types.Budget, error)
  GetProjectBudget(ctx context.Context, projectID uuid.UUID) (*types.Budget, error)
  RecordSpend(ctx context.Context, projectID uuid.UUID, amount float64) (*types.Budget, error)
}

type budgetService struct {
  db            *gorm.DB
  log           *logger.Logger
  budgetRepo    repos.BudgetRepo
  analysisCache cache.AnalysisCache
}

func NewBudgetService(db *gorm.DB, log *logger.Logger, budgetRepo repos.BudgetRepo, analysisCache cache.AnalysisCache) BudgetService {
  serviceLog := log.With("service", "BudgetService")
  return &budgetService{db: db, log: serviceLog, budgetRepo: budgetRepo, analysisCache: analysisCache}
}

func (s *budgetService) invalidateAnalysis(ctx context.Context, projectID uuid.UUID) {
  if s.analysisCache == nil {
    return
  }
  if err := s.analysisCache.Invalidate(ctx, projectID.String()); err != nil {
    s.log.Warn("Analysis cache invalidation failed", "project_id", projectID, "error", err)
  }
}

func (s *budgetService) SetProjectBudget(ctx context.Context, projectID uuid.UUID, planned, spent float64) (*types.Budget, error) {
  if projectID == uuid.Nil {
    return nil, fmt.Errorf("Missing project id")
  }
  if planned < 0 || spent < 0 {
    return nil, fmt.Errorf("Budget amounts cannot be negative")
  }
  budget := &types.Budget{
    ID:            uuid.New(),
    ProjectID:     projectID,
    PlannedAmount: planned,
    SpentAmount:   spent,
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.budgetRepo.Upsert(ctx, tx, budget)
  }); err != nil {
    return nil, fmt.Errorf("Failed to upsert budget: %w", err)
  }
  s.invalidateAnalysis(ctx, projectID)
  return s.budgetRepo.GetByProjectID(ctx, nil, projectID)
}

func (s *budgetService) GetProjectBudget(ctx context.Context, projectID uuid.UUID) (*types.Budget, error) {
  budget, err := s.budgetRepo.GetByProjectID(ctx, nil, projectID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load budget: %w", err)
  }
  return budget, nil
}

func (s *budgetService) RecordSpend(ctx context.Context, projectID uuid.UUID, amount float64) (*types.Budget, error) {
  if amount <= 0 {
    return nil, fmt.Errorf("Spend amount must be positive")
  }
  var updated *types.Budget
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    budget, gErr := s.budgetRepo.GetByProjectID(ctx, tx, projectID)
    if gErr != nil {
      return fmt.Errorf("Failed to load budget: %w", gErr)
    }
    budget.SpentAmount += amount
    if sErr := s.budgetRepo.Save(ctx, tx, budget); sErr != nil {
      return fmt.Errorf("Failed to save budget: %w", sErr)
    }
    updated = budget
    return nil
  }); err != nil {
    return nil, err
  }
  s.invalidateAnalysis(ctx, projectID)
  return updated, nil
}
