package main

import (
  "fmt"
  "os"
  "time"
  "github.com/yungbote/buildflow-backend/internal/cache"
  "github.com/yungbote/buildflow-backend/internal/db"
  "github.com/yungbote/buildflow-backend/internal/handlers"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/middleware"
  "github.com/yungbote/buildflow-backend/internal/prediction"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/server"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  bundlePath := utils.GetEnv("MODEL_BUNDLE_PATH", "", log)
  analysisCacheTTL := utils.GetEnvAsInt("ANALYSIS_CACHE_TTL", 300, log)
  alertThreshold := utils.GetEnvAsFloat("ALERT_THRESHOLD_DEFAULT", 0.5, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  projectRepo := repos.NewProjectRepo(thePG, log)
  siteRepo := repos.NewSiteRepo(thePG, log)
  lotRepo := repos.NewLotRepo(thePG, log)
  taskRepo := repos.NewTaskRepo(thePG, log)
  budgetRepo := repos.NewBudgetRepo(thePG, log)
  alertRepo := repos.NewAlertRepo(thePG, log)
  aiModelRepo := repos.NewAIModelRepo(thePG, log)
  resourceRepo := repos.NewResourceRepo(thePG, log)
  supplierRepo := repos.NewSupplierRepo(thePG, log)
  reportRepo := repos.NewReportRepo(thePG, log)
  contactRepo := repos.NewContactMessageRepo(thePG, log)

  // Prediction bundle
  var bundle *prediction.Bundle
  if bundlePath != "" {
    bundle, err = prediction.LoadBundle(bundlePath, log)
    if err != nil {
      log.Warn("Model bundle unavailable, using statistical fallback", "path", bundlePath, "error", err)
      bundle = nil
    }
  }
  engine := prediction.NewEngine(bundle, log)

  // Analysis cache
  analysisCache, err := cache.NewAnalysisCache(log)
  if err != nil {
    log.Warn("Analysis cache unavailable, analyses will not be cached", "error", err)
    analysisCache = nil
  }
  if analysisCache != nil {
    defer analysisCache.Close()
  }

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  userService := services.NewUserService(thePG, log, userRepo)
  progressService := services.NewProgressService(thePG, log, projectRepo, siteRepo, lotRepo, taskRepo, analysisCache)
  projectService := services.NewProjectService(thePG, log, projectRepo, budgetRepo, progressService, analysisCache)
  siteService := services.NewSiteService(thePG, log, siteRepo, progressService)
  lotService := services.NewLotService(thePG, log, lotRepo, progressService)
  taskService := services.NewTaskService(thePG, log, taskRepo, progressService)
  budgetService := services.NewBudgetService(thePG, log, budgetRepo, analysisCache)
  alertService := services.NewAlertService(thePG, log, alertRepo)
  aiModelService := services.NewAIModelService(thePG, log, aiModelRepo)
  analysisService := services.NewAnalysisService(thePG, log, engine, analysisCache, projectRepo, siteRepo, lotRepo, taskRepo, budgetRepo, alertRepo, aiModelRepo, progressService, time.Duration(analysisCacheTTL)*time.Second, alertThreshold)
  reportService := services.NewReportService(thePG, log, reportRepo, projectService, analysisService)
  resourceService := services.NewResourceService(thePG, log, resourceRepo)
  supplierService := services.NewSupplierService(thePG, log, supplierRepo)
  contactService := services.NewContactService(thePG, log, contactRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  projectHandler := handlers.NewProjectHandler(projectService)
  siteHandler := handlers.NewSiteHandler(siteService)
  lotHandler := handlers.NewLotHandler(lotService)
  taskHandler := handlers.NewTaskHandler(taskService)
  budgetHandler := handlers.NewBudgetHandler(budgetService)
  alertHandler := handlers.NewAlertHandler(alertService)
  analysisHandler := handlers.NewAnalysisHandler(analysisService)
  reportHandler := handlers.NewReportHandler(reportService)
  resourceHandler := handlers.NewResourceHandler(resourceService)
  supplierHandler := handlers.NewSupplierHandler(supplierService)
  contactHandler := handlers.NewContactHandler(contactService)
  aiModelHandler := handlers.NewAIModelHandler(aiModelService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:     authHandler,
    AuthMiddleware:  authMiddleware,
    UserHandler:     userHandler,
    ProjectHandler:  projectHandler,
    SiteHandler:     siteHandler,
    LotHandler:      lotHandler,
    TaskHandler:     taskHandler,
    BudgetHandler:   budgetHandler,
    AlertHandler:    alertHandler,
    AnalysisHandler: analysisHandler,
    ReportHandler:   reportHandler,
    ResourceHandler: resourceHandler,
    SupplierHandler: supplierHandler,
    ContactHandler:  contactHandler,
    AIModelHandler:  aiModelHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
