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

type SiteService interface {
  CreateSite(ctx context.Context, site *types.Site) (*types.Site, error)
  GetSite(ctx context.Context, id uuid.UUID) (*types.Site, error)
  ListSites(ctx context.Context) ([]*types.Site, error)
  ListSitesByProject(ctx context.Context, projectID uuid.UUID) ([]*types.Site, error)
  UpdateSite(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Site, error)
  DeleteSite(ctx context.Context, id uuid.UUID) error
}

type siteService struct {
  db              *gorm.DB
  log             *logger.Logger
  siteRepo        repos.SiteRepo
  progressService ProgressService
}

func NewSiteService(
  db *gorm.DB,
  log *logger.Logger,
  siteRepo repos.SiteRepo,
  progressService ProgressService,
) SiteService {
  serviceLog := log.With("service", "SiteService")
  return &siteService{
    db:              db,
    log:             serviceLog,
    siteRepo:        siteRepo,
    progressService: progressService,
  }
}

func (s *siteService) CreateSite(ctx context.Context, site *types.Site) (*types.Site, error) {
  if site == nil || site.Name == "" {
    return nil, fmt.Errorf("Site name is required")
  }
  if site.ProjectID == uuid.Nil {
    return nil, fmt.Errorf("Site must belong to a project")
  }
  if site.Status == "" {
    site.Status = types.StatusPlanned
  }
  if site.Priority == "" {
    site.Priority = types.PriorityMedium
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    site.ID = uuid.New()
    if _, cErr := s.siteRepo.Create(ctx, tx, site); cErr != nil {
      return fmt.Errorf("Failed to create site: %w", cErr)
    }
    return s.progressService.CascadeProjectStatus(ctx, tx, site.ProjectID)
  }); err != nil {
    return nil, err
  }
  return site, nil
}

func (s *siteService) GetSite(ctx context.Context, id uuid.UUID) (*types.Site, error) {
  site, err := s.siteRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load site: %w", err)
  }
  return site, nil
}

func (s *siteService) ListSites(ctx context.Context) ([]*types.Site, error) {
  sites, err := s.siteRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list sites: %w", err)
  }
  return sites, nil
}

func (s *siteService) ListSitesByProject(ctx context.Context, projectID uuid.UUID) ([]*types.Site, error) {
  sites, err := s.siteRepo.GetByProjectID(ctx, nil, projectID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list sites for project: %w", err)
  }
  return sites, nil
}

func (s *siteService) UpdateSite(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Site, error) {
  site, gErr := s.siteRepo.GetByID(ctx, nil, id)
  if gErr != nil {
    return nil, fmt.Errorf("Failed to load site: %w", gErr)
  }
  if len(fields) == 0 {
    return site, nil
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if uErr := s.siteRepo.UpdateFields(ctx, tx, id, fields); uErr != nil {
      return fmt.Errorf("Failed to update site: %w", uErr)
    }
    return s.progressService.CascadeFromSite(ctx, tx, id)
  }); err != nil {
    return nil, err
  }
  return s.siteRepo.GetByID(ctx, nil, id)
}

func (s *siteService) DeleteSite(ctx context.Context, id uuid.UUID) error {
  site, gErr := s.siteRepo.GetByID(ctx, nil, id)
  if gErr != nil {
    return fmt.Errorf("Failed to load site: %w", gErr)
  }
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.siteRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete site: %w", dErr)
    }
    return s.progressService.CascadeProjectStatus(ctx, tx, site.ProjectID)
  })
}
