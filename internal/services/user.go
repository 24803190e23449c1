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

type UserService interface {
  GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
  ListUsers(ctx context.Context) ([]*types.User, error)
  ListPendingUsers(ctx context.Context) ([]*types.User, error)
  ApproveUser(ctx context.Context, id uuid.UUID) (*types.User, error)
  RejectUser(ctx context.Context, id uuid.UUID) error
  SetUserRole(ctx context.Context, id uuid.UUID, role string) (*types.User, error)
  DeactivateUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
  user, err := s.userRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load user: %w", err)
  }
  return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*types.User, error) {
  users, err := s.userRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list users: %w", err)
  }
  return users, nil
}

func (s *userService) ListPendingUsers(ctx context.Context) ([]*types.User, error) {
  users, err := s.userRepo.GetPending(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list pending users: %w", err)
  }
  return users, nil
}

func (s *userService) ApproveUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.userRepo.UpdateFields(ctx, tx, id, map[string]interface{}{"is_approved": true})
  }); err != nil {
    return nil, fmt.Errorf("Failed to approve user: %w", err)
  }
  return s.userRepo.GetByID(ctx, nil, id)
}

func (s *userService) RejectUser(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    user, gErr := s.userRepo.GetByID(ctx, tx, id)
    if gErr != nil {
      return fmt.Errorf("Failed to load user: %w", gErr)
    }
    if user.IsApproved {
      return fmt.Errorf("Cannot reject an approved user")
    }
    if dErr := s.userRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete user: %w", dErr)
    }
    return nil
  })
}

func (s *userService) SetUserRole(ctx context.Context, id uuid.UUID, role string) (*types.User, error) {
  switch role {
  case types.RoleAdministrator, types.RoleProjectOwner, types.RoleProjectManager, types.RoleFieldEngineer:
  default:
    return nil, fmt.Errorf("Unknown role: %s", role)
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.userRepo.UpdateFields(ctx, tx, id, map[string]interface{}{"role": role})
  }); err != nil {
    return nil, fmt.Errorf("Failed to set user role: %w", err)
  }
  return s.userRepo.GetByID(ctx, nil, id)
}

func (s *userService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.userRepo.UpdateFields(ctx, tx, id, map[string]interface{}{"is_active": false})
  })
}
