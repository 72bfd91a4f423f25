package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// SeedHandler обрабатывает запросы на наполнение базы демо-данными.
// Маршрут регистрируется только в development окружении.
type SeedHandler struct {
	seedService *service.SeedService
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed наполняет каталог навыков и создаёт демо-пользователей.
// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.seedService.SeedData(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "не удалось сгенерировать демо-данные",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "демо-данные созданы",
	})
}
