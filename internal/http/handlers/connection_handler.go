package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/dto"
	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// ConnectionHandler обслуживает заявки на обмен навыками.
type ConnectionHandler struct {
	connections *service.ConnectionService
}

func NewConnectionHandler(connections *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connections: connections}
}

// CreateConnection POST /connections
// Инициатором всегда выступает вызывающий пользователь.
func (h *ConnectionHandler) CreateConnection(c *gin.Context) {
	callerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "укажите recipient_id, initiator_skill_id и recipient_skill_id")
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		common.RespondBadRequest(c, "неверный recipient_id")
		return
	}
	initiatorSkillID, err := uuid.Parse(req.InitiatorSkillID)
	if err != nil {
		common.RespondBadRequest(c, "неверный initiator_skill_id")
		return
	}
	recipientSkillID, err := uuid.Parse(req.RecipientSkillID)
	if err != nil {
		common.RespondBadRequest(c, "неверный recipient_skill_id")
		return
	}

	conn, err := h.connections.Create(c.Request.Context(), callerID, service.CreateConnectionInput{
		RecipientID:      recipientID,
		InitiatorSkillID: initiatorSkillID,
		RecipientSkillID: recipientSkillID,
		SessionDate:      req.SessionDate,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conn)
}

// UpdateConnectionStatus PUT /connections/:id
// Принять или отклонить заявку может только её получатель.
func (h *ConnectionHandler) UpdateConnectionStatus(c *gin.Context) {
	callerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	connectionID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный connection_id")
		return
	}

	var req dto.UpdateConnectionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "укажите status")
		return
	}

	conn, err := h.connections.UpdateStatus(c.Request.Context(), callerID, connectionID, req.Status)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, conn)
}

// ListUserConnections GET /users/:id/connections
func (h *ConnectionHandler) ListUserConnections(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	connections, err := h.connections.ListForUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, connections)
}
