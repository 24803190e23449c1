package handlers

import (
  "fmt"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/services"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
  id, err := uuid.Parse(c.Param(name))
  if err != nil {
    return uuid.Nil, fmt.Errorf("invalid %s", name)
  }
  return id, nil
}

func (uh *UserHandler) List(c *gin.Context) {
  users, err := uh.userService.ListUsers(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "user_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"users": users})
}

func (uh *UserHandler) ListPending(c *gin.Context) {
  users, err := uh.userService.ListPendingUsers(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "user_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"users": users})
}

func (uh *UserHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  user, err := uh.userService.GetUser(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "user_not_found", err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) Approve(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  user, err := uh.userService.ApproveUser(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "user_approve_failed", err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) Reject(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := uh.userService.RejectUser(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "user_reject_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "user rejected"})
}

func (uh *UserHandler) SetRole(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var req struct {
    Role string `json:"role"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  user, err := uh.userService.SetUserRole(c.Request.Context(), id, req.Role)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "user_role_failed", err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) Deactivate(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := uh.userService.DeactivateUser(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "user_deactivate_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "user deactivated"})
}
