package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type AlertHandler struct {
  alertService services.AlertService
}

func NewAlertHandler(alertService services.AlertService) *AlertHandler {
  return &AlertHandler{alertService: alertService}
}

func (ah *AlertHandler) Create(c *gin.Context) {
  var alert types.Alert
  if err := c.ShouldBindJSON(&alert); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := ah.alertService.DeclareAlert(c.Request.Context(), &alert)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "alert_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"alert": created})
}

func (ah *AlertHandler) List(c *gin.Context) {
  alerts, err := ah.alertService.ListAlerts(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "alert_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"alerts": alerts})
}

func (ah *AlertHandler) ListByProject(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  alerts, err := ah.alertService.ListAlertsByProject(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "alert_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"alerts": alerts})
}

func (ah *AlertHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  alert, err := ah.alertService.GetAlert(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "alert_not_found", err)
    return
  }
  RespondOK(c, gin.H{"alert": alert})
}

func (ah *AlertHandler) UpdateStatus(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var req struct {
    Status string `json:"status"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  alert, err := ah.alertService.UpdateAlertStatus(c.Request.Context(), id, req.Status)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "alert_update_failed", err)
    return
  }
  RespondOK(c, gin.H{"alert": alert})
}

func (ah *AlertHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := ah.alertService.DeleteAlert(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "alert_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "alert deleted"})
}
