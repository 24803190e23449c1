package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
)

type AnalysisHandler struct {
  analysisService services.AnalysisService
}

func NewAnalysisHandler(analysisService services.AnalysisService) *AnalysisHandler {
  return &AnalysisHandler{analysisService: analysisService}
}

func (ah *AnalysisHandler) Analyze(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  analysis, err := ah.analysisService.AnalyzeProject(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "analysis_failed", err)
    return
  }
  RespondOK(c, analysis)
}

func (ah *AnalysisHandler) GlobalRisk(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  risk, err := ah.analysisService.PredictGlobalRisk(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "risk_prediction_failed", err)
    return
  }
  RespondOK(c, risk)
}

func (ah *AnalysisHandler) GenerateAlerts(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  outcome, err := ah.analysisService.GenerateAlerts(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "alert_generation_failed", err)
    return
  }
  RespondOK(c, outcome)
}
