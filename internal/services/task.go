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

type TaskService interface {
  CreateTask(ctx context.Context, task *types.Task) (*types.Task, error)
  GetTask(ctx context.Context, id uuid.UUID) (*types.Task, error)
  ListTasksByLot(ctx context.Context, lotID uuid.UUID) ([]*types.Task, error)
  UpdateTask(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Task, error)
  SetTaskStatus(ctx context.Context, id uuid.UUID, status string) (*types.Task, error)
  DeleteTask(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
  db              *gorm.DB
  log             *logger.Logger
  taskRepo        repos.TaskRepo
  progressService ProgressService
}

func NewTaskService(
  db *gorm.DB,
  log *logger.Logger,
  taskRepo repos.TaskRepo,
  progressService ProgressService,
) TaskService {
  serviceLog := log.With("service", "TaskService")
  return &taskService{
    db:              db,
    log:             serviceLog,
    taskRepo:        taskRepo,
    progressService: progressService,
  }
}

func (s *taskService) CreateTask(ctx context.Context, task *types.Task) (*types.Task, error) {
  if task == nil || task.Name == "" {
    return nil, fmt.Errorf("Task name is required")
  }
  if task.LotID == uuid.Nil {
    return nil, fmt.Errorf("Task must belong to a lot")
  }
  if task.Status == "" {
    task.Status = types.TaskStatusTodo
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    task.ID = uuid.New()
    if _, cErr := s.taskRepo.Create(ctx, tx, task); cErr != nil {
      return fmt.Errorf("Failed to create task: %w", cErr)
    }
    return s.progressService.CascadeFromLot(ctx, tx, task.LotID)
  }); err != nil {
    return nil, err
  }
  return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*types.Task, error) {
  task, err := s.taskRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load task: %w", err)
  }
  return task, nil
}

func (s *taskService) ListTasksByLot(ctx context.Context, lotID uuid.UUID) ([]*types.Task, error) {
  tasks, err := s.taskRepo.GetByLotID(ctx, nil, lotID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list tasks for lot: %w", err)
  }
  return tasks, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Task, error) {
  task, gErr := s.taskRepo.GetByID(ctx, nil, id)
  if gErr != nil {
    return nil, fmt.Errorf("Failed to load task: %w", gErr)
  }
  if len(fields) == 0 {
    return task, nil
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if uErr := tx.WithContext(ctx).Model(&types.Task{}).Where("id = ?", id).Updates(fields).Error; uErr != nil {
      return fmt.Errorf("Failed to update task: %w", uErr)
    }
    return s.progressService.CascadeFromLot(ctx, tx, task.LotID)
  }); err != nil {
    return nil, err
  }
  return s.taskRepo.GetByID(ctx, nil, id)
}

func (s *taskService) SetTaskStatus(ctx context.Context, id uuid.UUID, status string) (*types.Task, error) {
  if status == "" {
    return nil, fmt.Errorf("Task status is required")
  }
  return s.UpdateTask(ctx, id, map[string]interface{}{"status": status})
}

func (s *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
  task, gErr := s.taskRepo.GetByID(ctx, nil, id)
  if gErr != nil {
    return fmt.Errorf("Failed to load task: %w", gErr)
  }
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.taskRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete task: %w", dErr)
    }
    return s.progressService.CascadeFromLot(ctx, tx, task.LotID)
  })
}
