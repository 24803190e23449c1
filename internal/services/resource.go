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

type ResourceService interface {
  CreateResource(ctx context.Context, resource *types.Resource) (*types.Resource, error)
  GetResource(ctx context.Context, id uuid.UUID) (*types.Resource, error)
  ListResources(ctx context.Context, kind string) ([]*types.Resource, error)
  UpdateResource(ctx context.Context, resource *types.Resource) (*types.Resource, error)
  DeleteResource(ctx context.Context, id uuid.UUID) error
}

type resourceService struct {
  db           *gorm.DB
  log          *logger.Logger
  resourceRepo repos.ResourceRepo
}

func NewResourceService(db *gorm.DB, log *logger.Logger, resourceRepo repos.ResourceRepo) ResourceService {
  serviceLog := log.With("service", "ResourceService")
  return &resourceService{db: db, log: serviceLog, resourceRepo: resourceRepo}
}

func (s *resourceService) CreateResource(ctx context.Context, resource *types.Resource) (*types.Resource, error) {
  if resource == nil || resource.Name == "" {
    return nil, fmt.Errorf("Resource name is required")
  }
  if resource.Kind != types.ResourceKindHuman && resource.Kind != types.ResourceKindMaterial {
    return nil, fmt.Errorf("Unknown resource kind: %s", resource.Kind)
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    resource.ID = uuid.New()
    if _, cErr := s.resourceRepo.Create(ctx, tx, resource); cErr != nil {
      return fmt.Errorf("Failed to create resource: %w", cErr)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  return resource, nil
}

func (s *resourceService) GetResource(ctx context.Context, id uuid.UUID) (*types.Resource, error) {
  resource, err := s.resourceRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load resource: %w", err)
  }
  return resource, nil
}

func (s *resourceService) ListResources(ctx context.Context, kind string) ([]*types.Resource, error) {
  if kind != "" {
    resources, err := s.resourceRepo.GetByKind(ctx, nil, kind)
    if err != nil {
      return nil, fmt.Errorf("Failed to list resources: %w", err)
    }
    return resources, nil
  }
  resources, err := s.resourceRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list resources: %w", err)
  }
  return resources, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, resource *types.Resource) (*types.Resource, error) {
  if resource == nil || resource.ID == uuid.Nil {
    return nil, fmt.Errorf("Missing resource id")
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.resourceRepo.Save(ctx, tx, resource)
  }); err != nil {
    return nil, fmt.Errorf("Failed to update resource: %w", err)
  }
  return s.resourceRepo.GetByID(ctx, nil, resource.ID)
}

func (s *resourceService) DeleteResource(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.resourceRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete resource: %w", dErr)
    }
    return nil
  })
}
