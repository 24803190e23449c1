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

type SupplierService interface {
  CreateSupplier(ctx context.Context, supplier *types.Supplier) (*types.Supplier, error)
  GetSupplier(ctx context.Context, id uuid.UUID) (*types.Supplier, error)
  ListSuppliers(ctx context.Context) ([]*types.Supplier, error)
  UpdateSupplier(ctx context.Context, supplier *types.Supplier) (*types.Supplier, error)
  DeleteSupplier(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
  db           *gorm.DB
  log          *logger.Logger
  supplierRepo repos.SupplierRepo
}

func NewSupplierService(db *gorm.DB, log *logger.Logger, supplierRepo repos.SupplierRepo) SupplierService {
  serviceLog := log.With("service", "SupplierService")
  return &supplierService{db: db, log: serviceLog, supplierRepo: supplierRepo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, supplier *types.Supplier) (*types.Supplier, error) {
  if supplier == nil || supplier.Company == "" {
    return nil, fmt.Errorf("Supplier company is required")
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    supplier.ID = uuid.New()
    if _, cErr := s.supplierRepo.Create(ctx, tx, supplier); cErr != nil {
      return fmt.Errorf("Failed to create supplier: %w", cErr)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  return supplier, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*types.Supplier, error) {
  supplier, err := s.supplierRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load supplier: %w", err)
  }
  return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]*types.Supplier, error) {
  suppliers, err := s.supplierRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list suppliers: %w", err)
  }
  return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplier *types.Supplier) (*types.Supplier, error) {
  if supplier == nil || supplier.ID == uuid.Nil {
    return nil, fmt.Errorf("Missing supplier id")
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.supplierRepo.Save(ctx, tx, supplier)
  }); err != nil {
    return nil, fmt.Errorf("Failed to update supplier: %w", err)
  }
  return s.supplierRepo.GetByID(ctx, nil, supplier.ID)
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.supplierRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete supplier: %w", dErr)
    }
    return nil
  })
}
