package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// MatchHandler обслуживает подбор наставников.
type MatchHandler struct {
	matches *service.MatchService
}

func NewMatchHandler(matches *service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// GetMatches GET /matches/:id
// Возвращает до 10 кандидатов, ранжированных по рейтингу и числу отзывов.
// Пустой learn-set даёт пустой список, не ошибку.
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	candidates, err := h.matches.FindMatches(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}
