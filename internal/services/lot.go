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

type LotService interface {
  CreateLot(ctx context.Context, lot *types.Lot) (*types.Lot, error)
  GetLot(ctx context.Context, id uuid.UUID) (*types.Lot, error)
  ListLotsBySite(ctx context.Context, siteID uuid.UUID) ([]*types.Lot, error)
  UpdateLot(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Lot, error)
  DeleteLot(ctx context.Context, id uuid.UUID) error
}

type lotService struct {
  db              *gorm.DB
  log             *logger.Logger
  lotRepo         repos.LotRepo
  progressService ProgressService
}

func NewLotService(
  db *gorm.DB,
  log *logger.Logger,
  lotRepo repos.LotRepo,
  progressService ProgressService,
) LotService {
  serviceLog := log.With("service", "LotService")
  return &lotService{
    db:              db,
    log:             serviceLog,
    lotRepo:         lotRepo,
    progressService: progressService,
  }
}

func (s *lotService) CreateLot(ctx context.Context, lot *types.Lot) (*types.Lot, error) {
  if lot == nil || lot.Name == "" {
    return nil, fmt.Errorf("Lot name is required")
  }
  if lot.SiteID == uuid.Nil {
    return nil, fmt.Errorf("Lot must belong to a site")
  }
  if lot.Status == "" {
    lot.Status = types.StatusPlanned
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    lot.ID = uuid.New()
    if _, cErr := s.lotRepo.Create(ctx, tx, lot); cErr != nil {
      return fmt.Errorf("Failed to create lot: %w", cErr)
    }
    return s.progressService.CascadeFromSite(ctx, tx, lot.SiteID)
  }); err != nil {
    return nil, err
  }
  return lot, nil
}

func (s *lotService) GetLot(ctx context.Context, id uuid.UUID) (*types.Lot, error) {
  lot, err := s.lotRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load lot: %w", err)
  }
  return lot, nil
}

func (s *lotService) ListLotsBySite(ctx context.Context, siteID uuid.UUID) ([]*types.Lot, error) {
  lots, err := s.lotRepo.GetBySiteID(ctx, nil, siteID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list lots for site: %w", err)
  }
  return lots, nil
}

func (s *lotService) UpdateLot(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Lot, error) {
  if len(fields) == 0 {
    return s.GetLot(ctx, id)
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if uErr := s.lotRepo.UpdateFields(ctx, tx, id, fields); uErr != nil {
      return fmt.Errorf("Failed to update lot: %w", uErr)
    }
    return s.progressService.CascadeFromLot(ctx, tx, id)
  }); err != nil {
    return nil, err
  }
  return s.lotRepo.GetByID(ctx, nil, id)
}

func (s *lotService) DeleteLot(ctx context.Context, id uuid.UUID) error {
  lot, gErr := s.lotRepo.GetByID(ctx, nil, id)
  if gErr != nil {
    return fmt.Errorf("Failed to load lot: %w", gErr)
  }
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.lotRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete lot: %w", dErr)
    }
    return s.progressService.CascadeFromSite(ctx, tx, lot.SiteID)
  })
}
