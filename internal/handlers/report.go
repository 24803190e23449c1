package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ReportHandler struct {
  reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
  return &ReportHandler{reportService: reportService}
}

func (rh *ReportHandler) Create(c *gin.Context) {
  var report types.Report
  if err := c.ShouldBindJSON(&report); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := rh.reportService.CreateReport(c.Request.Context(), &report)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "report_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"report": created})
}

func (rh *ReportHandler) Generate(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  report, err := rh.reportService.GenerateProjectReport(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "report_generation_failed", err)
    return
  }
  RespondOK(c, gin.H{"report": report})
}

func (rh *ReportHandler) ListByProject(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  reports, err := rh.reportService.ListReportsByProject(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "report_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"reports": reports})
}

func (rh *ReportHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  report, err := rh.reportService.GetReport(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "report_not_found", err)
    return
  }
  RespondOK(c, gin.H{"report": report})
}

func (rh *ReportHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := rh.reportService.DeleteReport(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "report_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "report deleted"})
}
