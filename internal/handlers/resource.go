package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ResourceHandler struct {
  resourceService services.ResourceService
}

func NewResourceHandler(resourceService services.ResourceService) *ResourceHandler {
  return &ResourceHandler{resourceService: resourceService}
}

func (rh *ResourceHandler) Create(c *gin.Context) {
  var resource types.Resource
  if err := c.ShouldBindJSON(&resource); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := rh.resourceService.CreateResource(c.Request.Context(), &resource)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "resource_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"resource": created})
}

func (rh *ResourceHandler) List(c *gin.Context) {
  resources, err := rh.resourceService.ListResources(c.Request.Context(), c.Query("kind"))
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "resource_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"resources": resources})
}

func (rh *ResourceHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  resource, err := rh.resourceService.GetResource(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "resource_not_found", err)
    return
  }
  RespondOK(c, gin.H{"resource": resource})
}

func (rh *ResourceHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var resource types.Resource
  if bErr := c.ShouldBindJSON(&resource); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  resource.ID = id
  updated, err := rh.resourceService.UpdateResource(c.Request.Context(), &resource)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "resource_update_failed", err)
    return
  }
  RespondOK(c, gin.H{"resource": updated})
}

func (rh *ResourceHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := rh.resourceService.DeleteResource(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "resource_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "resource deleted"})
}
