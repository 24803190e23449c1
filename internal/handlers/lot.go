package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type LotHandler struct {
  lotService services.LotService
}

func NewLotHandler(lotService services.LotService) *LotHandler {
  return &LotHandler{lotService: lotService}
}

func (lh *LotHandler) Create(c *gin.Context) {
  var lot types.Lot
  if err := c.ShouldBindJSON(&lot); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := lh.lotService.CreateLot(c.Request.Context(), &lot)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "lot_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"lot": created})
}

func (lh *LotHandler) ListBySite(c *gin.Context) {
  siteID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  lots, err := lh.lotService.ListLotsBySite(c.Request.Context(), siteID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "lot_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"lots": lots})
}

func (lh *LotHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  lot, err := lh.lotService.GetLot(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "lot_not_found", err)
    return
  }
  RespondOK(c, gin.H{"lot": lot})
}

func (lh *LotHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var fields map[string]interface{}
  if bErr := c.ShouldBindJSON(&fields); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  lot, err := lh.lotService.UpdateLot(c.Request.Context(), id, fields)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "lot_update_failed", err)
    return
  }
  RespondOK(c, gin.H{"lot": lot})
}

func (lh *LotHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := lh.lotService.DeleteLot(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "lot_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "lot deleted"})
}
