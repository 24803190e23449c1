package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type TaskHandler struct {
  taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
  return &TaskHandler{taskService: taskService}
}

func (th *TaskHandler) Create(c *gin.Context) {
  var task types.Task
  if err := c.ShouldBindJSON(&task); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := th.taskService.CreateTask(c.Request.Context(), &task)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "task_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"task": created})
}

func (th *TaskHandler) ListByLot(c *gin.Context) {
  lotID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  tasks, err := th.taskService.ListTasksByLot(c.Request.Context(), lotID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "task_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"tasks": tasks})
}

func (th *TaskHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  task, err := th.taskService.GetTask(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "task_not_found", err)
    return
  }
  RespondOK(c, gin.H{"task": task})
}

func (th *TaskHandler) Update(c *gin.Context) {
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
  task, err := th.taskService.UpdateTask(c.Request.Context(), id, fields)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "task_update_failed", err)
    return
  }
  RespondOK(c, gin.H{"task": task})
}

func (th *TaskHandler) SetStatus(c *gin.Context) {
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
  task, err := th.taskService.SetTaskStatus(c.Request.Context(), id, req.Status)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "task_status_failed", err)
    return
  }
  RespondOK(c, gin.H{"task": task})
}

func (th *TaskHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := th.taskService.DeleteTask(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "task_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "task deleted"})
}
