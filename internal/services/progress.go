package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/cache"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/progress"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/types"
)

// ProgressService recomputes derived progress and synchronizes lifecycle
// statuses up the Lot -> Site -> Project chain. Task mutations call
// CascadeFromLot; lot and site mutations enter the chain at their own level.
// Project advancement is never persisted, so the project step only touches
// status. Store failures at any level are logged and the climb continues
// with prior values; the mutation that triggered the cascade never fails
// because an ancestor recompute could not load or persist.
type ProgressService interface {
  CascadeFromLot(ctx context.Context, tx *gorm.DB, lotID uuid.UUID) error
  CascadeFromSite(ctx context.Context, tx *gorm.DB, siteID uuid.UUID) error
  CascadeProjectStatus(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error
  ProjectAdvancement(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (float64, error)
}

type progressService struct {
  db            *gorm.DB
  log           *logger.Logger
  projectRepo   repos.ProjectRepo
  siteRepo      repos.SiteRepo
  lotRepo       repos.LotRepo
  taskRepo      repos.TaskRepo
  analysisCache cache.AnalysisCache
}

func NewProgressService(
  db *gorm.DB,
  log *logger.Logger,
  projectRepo repos.ProjectRepo,
  siteRepo    repos.SiteRepo,
  lotRepo     repos.LotRepo,
  taskRepo    repos.TaskRepo,
  analysisCache cache.AnalysisCache,
) ProgressService {
  serviceLog := log.With("service", "ProgressService")
  return &progressService{
    db:            db,
    log:           serviceLog,
    projectRepo:   projectRepo,
    siteRepo:      siteRepo,
    lotRepo:       lotRepo,
    taskRepo:      taskRepo,
    analysisCache: analysisCache,
  }
}

func (ps *progressService) CascadeFromLot(ctx context.Context, tx *gorm.DB, lotID uuid.UUID) error {
  if lotID == uuid.Nil {
    return fmt.Errorf("Missing lot id")
  }
  lot, lErr := ps.lotRepo.GetByID(ctx, tx, lotID)
  if lErr != nil {
    ps.log.Warn("Cascade cannot load lot, stopping climb", "lot_id", lotID, "error", lErr)
    return nil
  }
  tasks, tErr := ps.taskRepo.GetByLotID(ctx, tx, lotID)
  if tErr != nil {
    ps.log.Warn("Cascade cannot load tasks, keeping lot values", "lot_id", lotID, "error", tErr)
    return ps.CascadeFromSite(ctx, tx, lot.SiteID)
  }

  newProgress := progress.LotProgress(lot, tasks)
  newStatus := progress.SyncStatus(lot.Status, progress.TaskStatuses(tasks))
  if newProgress != lot.Progress || newStatus != lot.Status {
    if uErr := ps.lotRepo.UpdateFields(ctx, tx, lot.ID, map[string]interface{}{
      "progress": newProgress,
      "status":   newStatus,
    }); uErr != nil {
      ps.log.Warn("Failed to persist lot progress, continuing climb", "lot_id", lotID, "error", uErr)
    }
  }
  return ps.CascadeFromSite(ctx, tx, lot.SiteID)
}

func (ps *progressService) CascadeFromSite(ctx context.Context, tx *gorm.DB, siteID uuid.UUID) error {
  if siteID == uuid.Nil {
    return fmt.Errorf("Missing site id")
  }
  site, sErr := ps.siteRepo.GetByID(ctx, tx, siteID)
  if sErr != nil {
    ps.log.Warn("Cascade cannot load site, stopping climb", "site_id", siteID, "error", sErr)
    return nil
  }
  lots, lErr := ps.lotRepo.GetBySiteID(ctx, tx, siteID)
  if lErr != nil {
    ps.log.Warn("Cascade cannot load lots, keeping site values", "site_id", siteID, "error", lErr)
    return ps.CascadeProjectStatus(ctx, tx, site.ProjectID)
  }
  tasksByLot, tErr := ps.tasksByLot(ctx, tx, lots)
  if tErr != nil {
    ps.log.Warn("Cascade cannot load tasks, keeping site values", "site_id", siteID, "error", tErr)
    return ps.CascadeProjectStatus(ctx, tx, site.ProjectID)
  }

  newProgress := progress.SiteProgress(site, lots, tasksByLot)
  newStatus := progress.SyncStatus(site.Status, progress.LotStatuses(lots))
  if newProgress != site.Progress || newStatus != site.Status {
    if uErr := ps.siteRepo.UpdateFields(ctx, tx, site.ID, map[string]interface{}{
      "progress": newProgress,
      "status":   newStatus,
    }); uErr != nil {
      ps.log.Warn("Failed to persist site progress, continuing climb", "site_id", siteID, "error", uErr)
    }
  }
  return ps.CascadeProjectStatus(ctx, tx, site.ProjectID)
}

func (ps *progressService) CascadeProjectStatus(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error {
  if projectID == uuid.Nil {
    return fmt.Errorf("Missing project id")
  }
  project, pErr := ps.projectRepo.GetByID(ctx, tx, projectID)
  if pErr != nil {
    ps.log.Warn("Cascade cannot load project, skipping status sync", "project_id", projectID, "error", pErr)
    return nil
  }
  sites, sErr := ps.siteRepo.GetByProjectID(ctx, tx, projectID)
  if sErr != nil {
    ps.log.Warn("Cascade cannot load sites, keeping project status", "project_id", projectID, "error", sErr)
    return nil
  }

  newStatus := progress.SyncStatus(project.Status, progress.SiteStatuses(sites))
  if newStatus != project.Status {
    if uErr := ps.projectRepo.UpdateFields(ctx, tx, project.ID, map[string]interface{}{
      "status": newStatus,
    }); uErr != nil {
      ps.log.Warn("Failed to persist project status", "project_id", projectID, "error", uErr)
    }
  }
  // Every cascade ends here, so one invalidation covers the whole chain.
  if ps.analysisCache != nil {
    if iErr := ps.analysisCache.Invalidate(ctx, project.ID.String()); iErr != nil {
      ps.log.Warn("Analysis cache invalidation failed", "project_id", project.ID, "error", iErr)
    }
  }
  return nil
}

func (ps *progressService) ProjectAdvancement(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (float64, error) {
  sites, sErr := ps.siteRepo.GetByProjectID(ctx, tx, projectID)
  if sErr != nil {
    return 0, fmt.Errorf("Failed to load sites: %w", sErr)
  }
  lotsBySite := make(map[uuid.UUID][]*types.Lot, len(sites))
  var allLots []*types.Lot
  for _, site := range sites {
    lots, lErr := ps.lotRepo.GetBySiteID(ctx, tx, site.ID)
    if lErr != nil {
      return 0, fmt.Errorf("Failed to load lots: %w", lErr)
    }
    lotsBySite[site.ID] = lots
    allLots = append(allLots, lots...)
  }
  tasksByLot, tErr := ps.tasksByLot(ctx, tx, allLots)
  if tErr != nil {
    return 0, tErr
  }
  return progress.ProjectAdvancement(sites, lotsBySite, tasksByLot), nil
}

func (ps *progressService) tasksByLot(ctx context.Context, tx *gorm.DB, lots []*types.Lot) (map[uuid.UUID][]*types.Task, error) {
  if len(lots) == 0 {
    return map[uuid.UUID][]*types.Task{}, nil
  }
  lotIDs := make([]uuid.UUID, 0, len(lots))
  for _, lot := range lots {
    lotIDs = append(lotIDs, lot.ID)
  }
  tasks, tErr := ps.taskRepo.GetByLotIDs(ctx, tx, lotIDs)
  if tErr != nil {
    return nil, fmt.Errorf("Failed to load tasks: %w", tErr)
  }
  grouped := make(map[uuid.UUID][]*types.Task, len(lots))
  for _, task := range tasks {
    grouped[task.LotID] = append(grouped[task.LotID], task)
  }
  return grouped, nil
}
