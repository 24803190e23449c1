package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type SupplierHandler struct {
  supplierService services.SupplierService
}

func NewSupplierHandler(supplierService services.SupplierService) *SupplierHandler {
  return &SupplierHandler{supplierService: supplierService}
}

func (sh *SupplierHandler) Create(c *gin.Context) {
  var supplier types.Supplier
  if err := c.ShouldBindJSON(&supplier); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := sh.supplierService.CreateSupplier(c.Request.Context(), &supplier)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "supplier_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"supplier": created})
}

func (sh *SupplierHandler) List(c *gin.Context) {
  suppliers, err := sh.supplierService.ListSuppliers(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "supplier_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"suppliers": suppliers})
}

func (sh *SupplierHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  supplier, err := sh.supplierService.GetSupplier(c.Request.Context(), id)
  if err != nil {
    RespondError(c, http.StatusNotFound, "supplier_not_found", err)
    return
  }
  RespondOK(c, gin.H{"supplier": supplier})
}

func (sh *SupplierHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var supplier types.Supplier
  if bErr := c.ShouldBindJSON(&supplier); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", bErr)
    return
  }
  supplier.ID = id
  updated, err := sh.supplierService.UpdateSupplier(c.Request.Context(), &supplier)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "supplier_update_failed", err)
    return
  }
  RespondOK(c, gin.H{"supplier": updated})
}

func (sh *SupplierHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := sh.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "supplier_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "supplier deleted"})
}
