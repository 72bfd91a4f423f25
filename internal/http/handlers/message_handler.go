package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/dto"
	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// MessageHandler обслуживает почтовый ящик пользователя.
type MessageHandler struct {
	messages *service.MessageService
}

func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// SendMessage POST /messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	callerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "укажите to_user_id и content")
		return
	}

	recipientID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		common.RespondBadRequest(c, "неверный to_user_id")
		return
	}

	msg, err := h.messages.Send(c.Request.Context(), callerID, recipientID, req.Content)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListInbox GET /users/:id/messages
func (h *MessageHandler) ListInbox(c *gin.Context) {
	callerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}
	if userID != callerID {
		common.RespondForbidden(c, "нет доступа к чужим сообщениям")
		return
	}

	messages, err := h.messages.ListInbox(c.Request.Context(), callerID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkRead PUT /messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	callerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	messageID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный message_id")
		return
	}

	if err := h.messages.MarkRead(c.Request.Context(), callerID, messageID); err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccess(c, http.StatusOK, "сообщение отмечено прочитанным", nil)
}
