package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type AIModelService interface {
  RegisterModel(ctx context.Context, model *types.AIModel) (*types.AIModel, error)
  GetModel(ctx context.Context, id uuid.UUID) (*types.AIModel, error)
  ListModels(ctx context.Context) ([]*types.AIModel, error)
  SetThreshold(ctx context.Context, id uuid.UUID, threshold float64) (*types.AIModel, error)
  DeleteModel(ctx context.Context, id uuid.UUID) error
}

type aiModelService struct {
  db          *gorm.DB
  log         *logger.Logger
  aiModelRepo repos.AIModelRepo
}

func NewAIModelService(db *gorm.DB, log *logger.Logger, aiModelRepo repos.AIModelRepo) AIModelService {
  serviceLog := log.With("service", "AIModelService")
  return &aiModelService{db: db, log: serviceLog, aiModelRepo: aiModelRepo}
}

func (s *aiModelService) RegisterModel(ctx context.Context, model *types.AIModel) (*types.AIModel, error) {
  if model == nil || model.Name == "" {
    return nil, fmt.Errorf("Model name is required")
  }
  if model.ConfidenceThreshold < 0 || model.ConfidenceThreshold > 1 {
    return nil, fmt.Errorf("Confidence threshold must be within [0, 1]")
  }
  if model.ConfidenceThreshold == 0 {
    model.ConfidenceThreshold = 0.5
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    model.ID = uuid.New()
    model.IsActive = true
    if _, cErr := s.aiModelRepo.Create(ctx, tx, model); cErr != nil {
      return fmt.Errorf("Failed to register model: %w", cErr)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  return model, nil
}

func (s *aiModelService) GetModel(ctx context.Context, id uuid.UUID) (*types.AIModel, error) {
  model, err := s.aiModelRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load model: %w", err)
  }
  return model, nil
}

func (s *aiModelService) ListModels(ctx context.Context) ([]*types.AIModel, error) {
  models, err := s.aiModelRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list models: %w", err)
  }
  return models, nil
}

func (s *aiModelService) SetThreshold(ctx context.Context, id uuid.UUID, threshold float64) (*types.AIModel, error) {
  if threshold < 0 || threshold > 1 {
    return nil, fmt.Errorf("Confidence threshold must be within [0, 1]")
  }
  var updated *types.AIModel
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    model, gErr := s.aiModelRepo.GetByID(ctx, tx, id)
    if gErr != nil {
      return fmt.Errorf("Failed to load model: %w", gErr)
    }
    model.ConfidenceThreshold = threshold
    if sErr := s.aiModelRepo.Save(ctx, tx, model); sErr != nil {
      return fmt.Errorf("Failed to save model: %w", sErr)
    }
    updated = model
    return nil
  }); err != nil {
    return nil, err
  }
  return updated, nil
}

func (s *aiModelService) DeleteModel(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.aiModelRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete model: %w", dErr)
    }
    return nil
  })
}
