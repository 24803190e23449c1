package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/yungbote/buildflow-backend/internal/handlers"
  "github.com/yungbote/buildflow-backend/internal/middleware"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type RouterConfig struct {
  AuthHandler     *handlers.AuthHandler
  AuthMiddleware  *middleware.AuthMiddleware
  UserHandler     *handlers.UserHandler
  ProjectHandler  *handlers.ProjectHandler
  SiteHandler     *handlers.SiteHandler
  LotHandler      *handlers.LotHandler
  TaskHandler     *handlers.TaskHandler
  BudgetHandler   *handlers.BudgetHandler
  AlertHandler    *handlers.AlertHandler
  AnalysisHandler *handlers.AnalysisHandler
  ReportHandler   *handlers.ReportHandler
  ResourceHandler *handlers.ResourceHandler
  SupplierHandler *handlers.SupplierHandler
  ContactHandler  *handlers.ContactHandler
  AIModelHandler  *handlers.AIModelHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)
  router.POST("/refresh", cfg.AuthHandler.Refresh)
  router.POST("/contact", cfg.ContactHandler.Submit)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/api")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/logout", cfg.AuthHandler.Logout)

  // Projects
  protected.POST("/projects", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.ProjectHandler.Create)
  protected.GET("/projects", cfg.ProjectHandler.List)
  protected.GET("/projects/:id", cfg.ProjectHandler.Get)
  protected.PATCH("/projects/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.ProjectHandler.Update)
  protected.DELETE("/projects/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner), cfg.ProjectHandler.Delete)
  protected.GET("/projects/:id/sites", cfg.SiteHandler.ListByProject)

  // Sites
  protected.POST("/sites", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.SiteHandler.Create)
  protected.GET("/sites", cfg.SiteHandler.List)
  protected.GET("/sites/:id", cfg.SiteHandler.Get)
  protected.PATCH("/sites/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.SiteHandler.Update)
  protected.DELETE("/sites/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner), cfg.SiteHandler.Delete)
  protected.GET("/sites/:id/lots", cfg.LotHandler.ListBySite)

  // Lots
  protected.POST("/lots", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.LotHandler.Create)
  protected.GET("/lots/:id", cfg.LotHandler.Get)
  protected.PATCH("/lots/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.LotHandler.Update)
  protected.DELETE("/lots/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner), cfg.LotHandler.Delete)
  protected.GET("/lots/:id/tasks", cfg.TaskHandler.ListByLot)

  // Tasks
  protected.POST("/tasks", cfg.TaskHandler.Create)
  protected.GET("/tasks/:id", cfg.TaskHandler.Get)
  protected.PATCH("/tasks/:id", cfg.TaskHandler.Update)
  protected.PATCH("/tasks/:id/status", cfg.TaskHandler.SetStatus)
  protected.DELETE("/tasks/:id", cfg.TaskHandler.Delete)

  // Budgets
  protected.GET("/projects/:id/budget", cfg.BudgetHandler.Get)
  protected.PUT("/projects/:id/budget", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.BudgetHandler.Set)
  protected.POST("/projects/:id/budget/spend", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.BudgetHandler.RecordSpend)

  // Analysis
  protected.GET("/projects/:id/analysis", cfg.AnalysisHandler.Analyze)
  protected.GET("/projects/:id/risk", cfg.AnalysisHandler.GlobalRisk)
  protected.POST("/projects/:id/alerts/generate", cfg.AnalysisHandler.GenerateAlerts)

  // Alerts
  protected.POST("/alerts", cfg.AlertHandler.Create)
  protected.GET("/alerts", cfg.AlertHandler.List)
  protected.GET("/projects/:id/alerts", cfg.AlertHandler.ListByProject)
  protected.GET("/alerts/:id", cfg.AlertHandler.Get)
  protected.PATCH("/alerts/:id/status", cfg.AlertHandler.UpdateStatus)
  protected.DELETE("/alerts/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.AlertHandler.Delete)

  // Reports
  protected.POST("/reports", cfg.ReportHandler.Create)
  protected.POST("/projects/:id/reports/generate", cfg.ReportHandler.Generate)
  protected.GET("/projects/:id/reports", cfg.ReportHandler.ListByProject)
  protected.GET("/reports/:id", cfg.ReportHandler.Get)
  protected.DELETE("/reports/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.ReportHandler.Delete)

  // Resources
  protected.POST("/resources", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.ResourceHandler.Create)
  protected.GET("/resources", cfg.ResourceHandler.List)
  protected.GET("/resources/:id", cfg.ResourceHandler.Get)
  protected.PUT("/resources/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.ResourceHandler.Update)
  protected.DELETE("/resources/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner), cfg.ResourceHandler.Delete)

  // Suppliers
  protected.POST("/suppliers", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.SupplierHandler.Create)
  protected.GET("/suppliers", cfg.SupplierHandler.List)
  protected.GET("/suppliers/:id", cfg.SupplierHandler.Get)
  protected.PUT("/suppliers/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner, types.RoleProjectManager), cfg.SupplierHandler.Update)
  protected.DELETE("/suppliers/:id", cfg.AuthMiddleware.RequireRole(types.RoleProjectOwner), cfg.SupplierHandler.Delete)

// ===============
// || Admin     ||
// ===============
  admin := protected.Group("/admin")
  admin.Use(cfg.AuthMiddleware.RequireRole(types.RoleAdministrator))
  admin.GET("/users", cfg.UserHandler.List)
  admin.GET("/users/pending", cfg.UserHandler.ListPending)
  admin.GET("/users/:id", cfg.UserHandler.Get)
  admin.POST("/users/:id/approve", cfg.UserHandler.Approve)
  admin.POST("/users/:id/reject", cfg.UserHandler.Reject)
  admin.PATCH("/users/:id/role", cfg.UserHandler.SetRole)
  admin.POST("/users/:id/deactivate", cfg.UserHandler.Deactivate)
  admin.GET("/contact-messages", cfg.ContactHandler.List)
  admin.POST("/contact-messages/:id/read", cfg.ContactHandler.MarkRead)
  admin.DELETE("/contact-messages/:id", cfg.ContactHandler.Delete)
  admin.POST("/models", cfg.AIModelHandler.Register)
  admin.GET("/models", cfg.AIModelHandler.List)
  admin.GET("/models/:id", cfg.AIModelHandler.Get)
  admin.PATCH("/models/:id/threshold", cfg.AIModelHandler.SetThreshold)
  admin.DELETE("/models/:id", cfg.AIModelHandler.Delete)

  return router
}
