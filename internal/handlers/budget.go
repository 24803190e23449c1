package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
)

type BudgetHandler struct {
  budgetService services.BudgetService
}

func NewBudgetHandler(budgetService services.BudgetService) *BudgetHandler {
  return &BudgetHandler{budgetService: budgetService}
}

func (bh *BudgetHandler) Get(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  budget, err := bh.budgetService.GetProjectBudget(c.Request.Context(), projectID)
  if err != nil {
    RespondError(c, http.StatusNotFound, "budget_not_found", err)
    return
  }
  RespondOK(c, gin.H{"budget": budget})
}

func (bh *BudgetHandler) Set(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var req struct {
    PlannedAmount float64 `json:"planned_amount"`
    SpentAmount   float64 `json:"spent_amount"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  budget, err := bh.budgetService.SetProjectBudget(c.Request.Context(), projectID, req.PlannedAmount, req.SpentAmount)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "budget_set_failed", err)
    return
  }
  RespondOK(c, gin.H{"budget": budget})
}

func (bh *BudgetHandler) RecordSpend(c *gin.Context) {
  projectID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var req struct {
    Amount float64 `json:"amount"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  budget, err := bh.budgetService.RecordSpend(c.Request.Context(), projectID, req.Amount)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "budget_spend_failed", err)
    return
  }
  RespondOK(c, gin.H{"budget": budget})
}
