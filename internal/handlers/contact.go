package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/buildflow-backend/internal/services"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ContactHandler struct {
  contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
  return &ContactHandler{contactService: contactService}
}

func (ch *ContactHandler) Submit(c *gin.Context) {
  var msg types.ContactMessage
  if err := c.ShouldBindJSON(&msg); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created, err := ch.contactService.SubmitMessage(c.Request.Context(), &msg)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "contact_submit_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": created})
}

func (ch *ContactHandler) List(c *gin.Context) {
  messages, err := ch.contactService.ListMessages(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "contact_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"messages": messages})
}

func (ch *ContactHandler) MarkRead(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := ch.contactService.MarkMessageRead(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "contact_mark_read_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "marked as read"})
}

func (ch *ContactHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if err := ch.contactService.DeleteMessage(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusBadRequest, "contact_delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "message deleted"})
}
