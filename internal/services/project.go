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

type ProjectService interface {
  CreateProject(ctx context.Context, project *types.Project) (*types.Project, error)
  GetProject(ctx context.Context, id uuid.UUID) (*types.Project, error)
  ListProjects(ctx context.Context) ([]*types.Project, error)
  UpdateProject(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Project, error)
  DeleteProject(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
  db              *gorm.DB
  log             *logger.Logger
  projectRepo     repos.ProjectRepo
  budgetRepo      repos.BudgetRepo
  progressService ProgressService
  analysisCache   cache.AnalysisCache
}

func NewProjectService(
  db *gorm.DB,
  log *logger.Logger,
  projectRepo repos.ProjectRepo,
  budgetRepo repos.BudgetRepo,
  progressService ProgressService,
  analysisCache cache.AnalysisCache,
) ProjectService {
  serviceLog := log.With("service", "ProjectService")
  return &projectService{
    db:              db,
    log:             serviceLog,
    projectRepo:     projectRepo,
    budgetRepo:      budgetRepo,
    progressService: progressService,
    analysisCache:   analysisCache,
  }
}

func (s *projectService) invalidateAnalysis(ctx context.Context, projectID uuid.UUID) {
  if s.analysisCache == nil {
    return
  }
  if err := s.analysisCache.Invalidate(ctx, projectID.String()); err != nil {
    s.log.Warn("Analysis cache invalidation failed", "project_id", projectID, "error", err)
  }
}

func (s *projectService) CreateProject(ctx context.Context, project *types.Project) (*types.Project, error) {
  if project == nil || project.Name == "" {
    return nil, fmt.Errorf("Project name is required")
  }
  if project.Status == "" {
    project.Status = types.StatusPlanned
  }
  if project.Priority == "" {
    project.Priority = types.PriorityMedium
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    project.ID = uuid.New()
    if _, cErr := s.projectRepo.Create(ctx, tx, project); cErr != nil {
      return fmt.Errorf("Failed to create project: %w", cErr)
    }
    if project.Budget > 0 {
      budget := &types.Budget{
        ID:            uuid.New(),
        ProjectID:     project.ID,
        PlannedAmount: project.Budget,
      }
      if _, bErr := s.budgetRepo.Create(ctx, tx, budget); bErr != nil {
        return fmt.Errorf("Failed to create project budget: %w", bErr)
      }
      project.BudgetDetail = budget
    }
    return nil
  }); err != nil {
    return nil, err
  }
  return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*types.Project, error) {
  project, err := s.projectRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load project: %w", err)
  }
  advancement, aErr := s.progressService.ProjectAdvancement(ctx, nil, id)
  if aErr != nil {
    return nil, aErr
  }
  project.Advancement = advancement
  return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]*types.Project, error) {
  projects, err := s.projectRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list projects: %w", err)
  }
  for _, project := range projects {
    advancement, aErr := s.progressService.ProjectAdvancement(ctx, nil, project.ID)
    if aErr != nil {
      return nil, aErr
    }
    project.Advancement = advancement
  }
  return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.Project, error) {
  if len(fields) == 0 {
    return s.GetProject(ctx, id)
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if uErr := s.projectRepo.UpdateFields(ctx, tx, id, fields); uErr != nil {
      return fmt.Errorf("Failed to update project: %w", uErr)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  s.invalidateAnalysis(ctx, id)
  return s.GetProject(ctx, id)
}

func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.projectRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete project: %w", dErr)
    }
    return nil
  }); err != nil {
    return err
  }
  s.invalidateAnalysis(ctx, id)
  return nil
}
