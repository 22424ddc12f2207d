package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consult-scheduler/internal/messaging"
)

type MessagingHandler struct {
	service *messaging.Service
}

func NewMessagingHandler(service *messaging.Service) *MessagingHandler {
	return &MessagingHandler{service: service}
}

type SendMessageRequest struct {
	RecipientID   string `json:"recipient_id" binding:"required"`
	Text          string `json:"text" binding:"required"`
	MessengerType string `json:"messenger_type" binding:"required"`
	SessionID     string `json:"session_id"`
}

// POST /messages
func (h *MessagingHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.service.Send(c.Request.Context(), messaging.SendInput{
		RecipientID:   req.RecipientID,
		Text:          req.Text,
		MessengerType: messaging.MessengerType(req.MessengerType),
		SessionID:     req.SessionID,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_send_message")
		return
	}

	httpresp.OK(c, result)
}
