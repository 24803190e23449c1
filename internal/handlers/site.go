package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type SiteHandler struct {
  siteService services.SiteService
}

func NewSiteHandler(siteService services.SiteService) *SiteHandler {
  return &SiteHandler{siteService: siteService}
}

func (sh *SiteHandler) Create(c *gin.Context) {
  var site types.Site
  if err := c.ShouldBindJSON(&site); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := sh.siteService.CreateSite(c.Request.Context(), &site)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "site_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"site": created})
}

func (sh *SiteHandler) List(c *gin.Context) {
  sites, err := sh.siteService.ListSites(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "site_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"sites": sites})
}

func (sh *SiteHandler) ListByProject(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  sites, err := sh.siteService.ListSitesByProject(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "site_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"sites": sites})
}

func (sh *SiteHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  site, err := sh.siteService.GetSite(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "site_not_found", err)
    return
  }
  RespondOK(c, gin.H{"site": site})
}

func (sh *SiteHandler) Update(c *gin.Context) {
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
  site, err := sh.siteService.UpdateSite(c.Request.Context(), id, fields)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "site_update_failed", err)
    return
  }
  RespondOK(c, gin.H{"site": site})
}

func (sh *SiteHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := sh.siteService.DeleteSite(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "site_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "site deleted"})
}
