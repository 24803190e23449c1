package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ProjectHandler struct {
  projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
  return &ProjectHandler{projectService: projectService}
}

func (ph *ProjectHandler) Create(c *gin.Context) {
  var project types.Project
  if err := c.ShouldBindJSON(&project); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := ph.projectService.CreateProject(c.Request.Context(), &project)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "project_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"project": created})
}

func (ph *ProjectHandler) List(c *gin.Context) {
  projects, err := ph.projectService.ListProjects(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "project_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"projects": projects})
}

func (ph *ProjectHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  project, err := ph.projectService.GetProject(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "project_not_found", err)
    return
  }
  RespondOK(c, gin.H{"project": project})
}

func (ph *ProjectHandler) Update(c *gin.Context) {
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
  project, err := ph.projectService.UpdateProject(c.Request.Context(), id, fields)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "project_update_failed", err)
    return
  }
  RespondOK(c, gin.H{"project": project})
}

func (ph *ProjectHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := ph.projectService.DeleteProject(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "project_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "project deleted"})
}
