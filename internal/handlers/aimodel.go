package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type AIModelHandler struct {
  aiModelService services.AIModelService
}

func NewAIModelHandler(aiModelService services.AIModelService) *AIModelHandler {
  return &AIModelHandler{aiModelService: aiModelService}
}

func (mh *AIModelHandler) Register(c *gin.Context) {
  var model types.AIModel
  if err := c.ShouldBindJSON(&model); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := mh.aiModelService.RegisterModel(c.Request.Context(), &model)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "model_register_failed", err)
    return
  }
  RespondOK(c, gin.H{"model": created})
}

func (mh *AIModelHandler) List(c *gin.Context) {
  models, err := mh.aiModelService.ListModels(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "model_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"models": models})
}

func (mh *AIModelHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  model, err := mh.aiModelService.GetModel(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "model_not_found", err)
    return
  }
  RespondOK(c, gin.H{"model": model})
}

func (mh *AIModelHandler) SetThreshold(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var req struct {
    ConfidenceThreshold float64 `json:"confidence_threshold"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  model, err := mh.aiModelService.SetThreshold(c.Request.Context(), id, req.ConfidenceThreshold)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "model_threshold_failed", err)
    return
  }
  RespondOK(c, gin.H{"model": model})
}

func (mh *AIModelHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := mh.aiModelService.DeleteModel(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "model_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "model deleted"})
}
