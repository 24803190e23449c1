package services

import (
  "context"
  "fmt"
  "strings"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ReportService interface {
  CreateReport(ctx context.Context, report *types.Report) (*types.Report, error)
  GenerateProjectReport(ctx context.Context, projectID uuid.UUID) (*types.Report, error)
  GetReport(ctx context.Context, id uuid.UUID) (*types.Report, error)
  ListReportsByProject(ctx context.Context, projectID uuid.UUID) ([]*types.Report, error)
  DeleteReport(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
  db              *gorm.DB
  log             *logger.Logger
  reportRepo      repos.ReportRepo
  projectService  ProjectService
  analysisService AnalysisService
}

func NewReportService(
  db *gorm.DB,
  log *logger.Logger,
  reportRepo repos.ReportRepo,
  projectService ProjectService,
  analysisService AnalysisService,
) ReportService {
  serviceLog := log.With("service", "ReportService")
  return &reportService{
    db:              db,
    log:             serviceLog,
    reportRepo:      reportRepo,
    projectService:  projectService,
    analysisService: analysisService,
  }
}

func (s *reportService) CreateReport(ctx context.Context, report *types.Report) (*types.Report, error) {
  if report == nil || report.Title == "" || report.Content == "" {
    return nil, fmt.Errorf("Report title and content are required")
  }
  if report.ProjectID == uuid.Nil {
    return nil, fmt.Errorf("Report must belong to a project")
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    report.ID = uuid.New()
    if _, cErr := s.reportRepo.Create(ctx, tx, report); cErr != nil {
      return fmt.Errorf("Failed to create report: %w", cErr)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  return report, nil
}

// GenerateProjectReport renders a point-in-time status summary from the
// project snapshot and its current analysis, then persists it.
func (s *reportService) GenerateProjectReport(ctx context.Context, projectID uuid.UUID) (*types.Report, error) {
  project, pErr := s.projectService.GetProject(ctx, projectID)
  if pErr != nil {
    return nil, pErr
  }
  analysis, aErr := s.analysisService.AnalyzeProject(ctx, projectID)
  if aErr != nil {
    return nil, aErr
  }

  var b strings.Builder
  fmt.Fprintf(&b, "Project: %s\n", project.Name)
  fmt.Fprintf(&b, "Status: %s\n", project.Status)
  fmt.Fprintf(&b, "Advancement: %.2f%%\n", analysis.Advancement)
  fmt.Fprintf(&b, "Delay risk: %s (score %.3f, estimated %d days)\n", analysis.Delay.Level, analysis.Delay.Score, analysis.Delay.DaysDelay)
  fmt.Fprintf(&b, "Budget risk: %s (score %.3f, estimated overrun %.2f)\n", analysis.Budget.Level, analysis.Budget.Score, analysis.Budget.EstimatedOverrun)
  fmt.Fprintf(&b, "Global risk: %s (score %.3f)\n", analysis.Risk.Level, analysis.Risk.Score)
  b.WriteString("Recommendations:\n")
  for _, rec := range analysis.Recommendations {
    fmt.Fprintf(&b, "- [%s] %s\n", rec.Priority, rec.Message)
  }

  report := &types.Report{
    ProjectID: projectID,
    Title:     fmt.Sprintf("Status report: %s", project.Name),
    Content:   b.String(),
  }
  return s.CreateReport(ctx, report)
}

func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*types.Report, error) {
  report, err := s.reportRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to load report: %w", err)
  }
  return report, nil
}

func (s *reportService) ListReportsByProject(ctx context.Context, projectID uuid.UUID) ([]*types.Report, error) {
  reports, err := s.reportRepo.GetByProjectID(ctx, nil, projectID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list reports: %w", err)
  }
  return reports, nil
}

func (s *reportService) DeleteReport(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.reportRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete report: %w", dErr)
    }
    return nil
  })
}
