package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// SearchHandler обслуживает текстовый поиск по пользователям и навыкам.
type SearchHandler struct {
	search *service.SearchService
}

func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search GET /search?q=...&category=...
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	category := c.Query("category")

	results, err := h.search.Search(c.Request.Context(), query, category)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
