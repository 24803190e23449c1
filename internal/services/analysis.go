package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"
  "gorm.io/gorm"
  "gorm.io/datatypes"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/cache"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/prediction"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/types"
)

const defaultAnalysisCacheTTL = 5 * time.Minute

type ProjectAnalysis struct {
  ProjectID       uuid.UUID                   `json:"project_id"`
  Advancement     float64                     `json:"advancement"`
  Delay           prediction.DelayResult      `json:"delay"`
  Budget          prediction.BudgetResult     `json:"budget"`
  Risk            prediction.RiskResult       `json:"risk"`
  Recommendations []prediction.Recommendation `json:"recommendations"`
  GeneratedAt     time.Time                   `json:"generated_at"`
}

// AlertOutcome reports the threshold comparison to the caller on every
// branch, whether or not an alert row was written.
type AlertOutcome struct {
  Created   bool         `json:"created"`
  Reason    string       `json:"reason,omitempty"`
  Score     float64      `json:"score"`
  Threshold float64      `json:"threshold"`
  Alert     *types.Alert `json:"alert,omitempty"`
}

// AnalysisService runs the prediction engine over a project snapshot. Reads
// go through the Redis cache; GenerateAlerts always recomputes because it
// persists a side effect.
type AnalysisService interface {
  AnalyzeProject(ctx context.Context, projectID uuid.UUID) (*ProjectAnalysis, error)
  PredictGlobalRisk(ctx context.Context, projectID uuid.UUID) (*prediction.RiskResult, error)
  GenerateAlerts(ctx context.Context, projectID uuid.UUID) (*AlertOutcome, error)
}

type analysisService struct {
  db              *gorm.DB
  log             *logger.Logger
  engine          *prediction.Engine
  analysisCache   cache.AnalysisCache
  projectRepo     repos.ProjectRepo
  siteRepo        repos.SiteRepo
  lotRepo         repos.LotRepo
  taskRepo        repos.TaskRepo
  budgetRepo      repos.BudgetRepo
  alertRepo       repos.AlertRepo
  aiModelRepo     repos.AIModelRepo
  progressService ProgressService
  cacheTTL        time.Duration

  // Used when no active model row supplies a threshold.
  fallbackThreshold float64
}

func NewAnalysisService(
  db *gorm.DB,
  log *logger.Logger,
  engine *prediction.Engine,
  analysisCache cache.AnalysisCache,
  projectRepo repos.ProjectRepo,
  siteRepo repos.SiteRepo,
  lotRepo repos.LotRepo,
  taskRepo repos.TaskRepo,
  budgetRepo repos.BudgetRepo,
  alertRepo repos.AlertRepo,
  aiModelRepo repos.AIModelRepo,
  progressService ProgressService,
  cacheTTL time.Duration,
  fallbackThreshold float64,
) AnalysisService {
  serviceLog := log.With("service", "AnalysisService")
  if cacheTTL <= 0 {
    cacheTTL = defaultAnalysisCacheTTL
  }
  if fallbackThreshold <= 0 || fallbackThreshold > 1 {
    fallbackThreshold = 0.5
  }
  return &analysisService{
    db:                db,
    log:               serviceLog,
    engine:            engine,
    analysisCache:     analysisCache,
    projectRepo:       projectRepo,
    siteRepo:          siteRepo,
    lotRepo:           lotRepo,
    taskRepo:          taskRepo,
    budgetRepo:        budgetRepo,
    alertRepo:         alertRepo,
    aiModelRepo:       aiModelRepo,
    progressService:   progressService,
    cacheTTL:          cacheTTL,
    fallbackThreshold: fallbackThreshold,
  }
}

func (s *analysisService) AnalyzeProject(ctx context.Context, projectID uuid.UUID) (*ProjectAnalysis, error) {
  cacheKey := projectID.String()
  if s.analysisCache != nil {
    var cached ProjectAnalysis
    if hit, err := s.analysisCache.Get(ctx, cacheKey, &cached); err != nil {
      s.log.Warn("Analysis cache read failed", "project_id", projectID, "error", err)
    } else if hit {
      return &cached, nil
    }
  }

  analysis, err := s.analyze(ctx, projectID)
  if err != nil {
    return nil, err
  }

  if s.analysisCache != nil {
    if err := s.analysisCache.Set(ctx, cacheKey, analysis, s.cacheTTL); err != nil {
      s.log.Warn("Analysis cache write failed", "project_id", projectID, "error", err)
    }
  }
  return analysis, nil
}

func (s *analysisService) analyze(ctx context.Context, projectID uuid.UUID) (*ProjectAnalysis, error) {
  view, err := s.buildView(ctx, projectID)
  if err != nil {
    return nil, err
  }

  delay := s.engine.PredictDelayRisk(view)
  budget := s.engine.PredictBudgetOverrun(view)
  risk := s.engine.PredictRisk(view)
  history, hErr := s.loadHistory(ctx, projectID)
  if hErr != nil {
    s.log.Warn("Failed to load historical projects, recommending without them", "error", hErr)
    history = nil
  }
  recs := s.engine.Recommendations(view, delay, budget, history)

  return &ProjectAnalysis{
    ProjectID:       projectID,
    Advancement:     view.Advancement,
    Delay:           delay,
    Budget:          budget,
    Risk:            risk,
    Recommendations: recs,
    GeneratedAt:     time.Now().UTC(),
  }, nil
}

func (s *analysisService) PredictGlobalRisk(ctx context.Context, projectID uuid.UUID) (*prediction.RiskResult, error) {
  view, err := s.buildView(ctx, projectID)
  if err != nil {
    return nil, err
  }
  risk := s.engine.PredictRisk(view)
  return &risk, nil
}

func (s *analysisService) GenerateAlerts(ctx context.Context, projectID uuid.UUID) (*AlertOutcome, error) {
  view, err := s.buildView(ctx, projectID)
  if err != nil {
    return nil, err
  }
  risk := s.engine.PredictRisk(view)

  threshold := s.fallbackThreshold
  var modelID *uuid.UUID
  if model, mErr := s.aiModelRepo.GetLatestActive(ctx, nil); mErr == nil && model != nil {
    threshold = model.ConfidenceThreshold
    modelID = &model.ID
  }

  if !shouldAlert(risk.Score, threshold) {
    return &AlertOutcome{Created: false, Reason: "below_threshold", Score: risk.Score, Threshold: threshold}, nil
  }

  kind := alertKindFor(risk.Score)
  metadata, _ := json.Marshal(map[string]interface{}{
    "risk_score": risk.Score,
    "risk_level": risk.Level,
    "confidence": risk.Confidence,
    "model_used": risk.ModelUsed,
    "threshold":  threshold,
  })
  alert := &types.Alert{
    ID:          uuid.New(),
    ProjectID:   projectID,
    ModelID:     modelID,
    Kind:        kind,
    Description: alertDescription(risk.Level, risk.Score, threshold),
    Status:      types.AlertStatusNew,
    Metadata:    datatypes.JSON(metadata),
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, cErr := s.alertRepo.Create(ctx, tx, alert); cErr != nil {
      return fmt.Errorf("Failed to create alert: %w", cErr)
    }
    return nil
  }); err != nil {
    s.log.Warn("Alert creation failed", "project_id", projectID, "error", err)
    return &AlertOutcome{Created: false, Reason: "create_failed", Score: risk.Score, Threshold: threshold}, nil
  }
  return &AlertOutcome{Created: true, Score: risk.Score, Threshold: threshold, Alert: alert}, nil
}

func shouldAlert(score, threshold float64) bool {
  return score >= threshold
}

func alertDescription(level string, score, threshold float64) string {
  return fmt.Sprintf("Project risk level %s: score %.2f exceeds alert threshold %.2f", level, score, threshold)
}

func alertKindFor(score float64) string {
  if score > 0.7 {
    return types.AlertKindCritical
  }
  return types.AlertKindWarning
}

func (s *analysisService) buildView(ctx context.Context, projectID uuid.UUID) (prediction.ProjectView, error) {
  project, pErr := s.projectRepo.GetByID(ctx, nil, projectID)
  if pErr != nil {
    return prediction.ProjectView{}, fmt.Errorf("Failed to load project: %w", pErr)
  }
  sites, sErr := s.siteRepo.GetByProjectID(ctx, nil, projectID)
  if sErr != nil {
    return prediction.ProjectView{}, fmt.Errorf("Failed to load sites: %w", sErr)
  }
  var lotIDs []uuid.UUID
  for _, site := range sites {
    lots, lErr := s.lotRepo.GetBySiteID(ctx, nil, site.ID)
    if lErr != nil {
      return prediction.ProjectView{}, fmt.Errorf("Failed to load lots: %w", lErr)
    }
    for _, lot := range lots {
      lotIDs = append(lotIDs, lot.ID)
    }
  }
  var tasks []*types.Task
  if len(lotIDs) > 0 {
    var tErr error
    tasks, tErr = s.taskRepo.GetByLotIDs(ctx, nil, lotIDs)
    if tErr != nil {
      return prediction.ProjectView{}, fmt.Errorf("Failed to load tasks: %w", tErr)
    }
  }
  budget, _ := s.budgetRepo.GetByProjectID(ctx, nil, projectID)
  advancement, aErr := s.progressService.ProjectAdvancement(ctx, nil, projectID)
  if aErr != nil {
    return prediction.ProjectView{}, aErr
  }
  return prediction.ProjectView{
    Project:     project,
    Sites:       sites,
    Tasks:       tasks,
    Budget:      budget,
    Advancement: advancement,
  }, nil
}

// loadHistory summarizes finished projects so the recommender can compare the
// current one against past outcomes. Delay is measured from the planned end
// date to the last update on the row; overrun from the budget record.
func (s *analysisService) loadHistory(ctx context.Context, excludeID uuid.UUID) ([]prediction.HistoricalProject, error) {
  projects, err := s.projectRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, err
  }
  var history []prediction.HistoricalProject
  for _, p := range projects {
    if p == nil || p.ID == excludeID {
      continue
    }
    if p.Status != types.StatusCompleted && p.Status != types.StatusCancelled {
      continue
    }
    h := prediction.HistoricalProject{Status: p.Status}
    if p.EndDate != nil && p.UpdatedAt.After(*p.EndDate) {
      h.DaysDelay = p.UpdatedAt.Sub(*p.EndDate).Hours() / 24
    }
    if budget, bErr := s.budgetRepo.GetByProjectID(ctx, nil, p.ID); bErr == nil && budget != nil {
      if budget.SpentAmount > budget.PlannedAmount {
        h.BudgetOverrun = budget.SpentAmount - budget.PlannedAmount
      }
    }
    history = append(history, h)
  }
  return history, nil
}
