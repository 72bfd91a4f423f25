package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/dto"
	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// SkillHandler обслуживает каталог навыков и записи профиля.
type SkillHandler struct {
	catalog  *service.CatalogService
	profiles *service.SkillProfileService
}

func NewSkillHandler(catalog *service.CatalogService, profiles *service.SkillProfileService) *SkillHandler {
	return &SkillHandler{catalog: catalog, profiles: profiles}
}

// ListSkills GET /skills
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.catalog.ListSkills(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// GetSkill GET /skills/:id
func (h *SkillHandler) GetSkill(c *gin.Context) {
	skillID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный skill_id")
		return
	}

	skill, err := h.catalog.GetSkill(c.Request.Context(), skillID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// UpsertUserSkill POST /users/:id/skills
// Добавляет или заменяет запись (пользователь, навык). Повторное добавление
// того же навыка перезаписывает прежнюю запись.
func (h *SkillHandler) UpsertUserSkill(c *gin.Context) {
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

	var req dto.UpsertSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "укажите skill_id и proficiency_level")
		return
	}

	skillID, err := uuid.Parse(req.SkillID)
	if err != nil {
		common.RespondBadRequest(c, "неверный skill_id")
		return
	}

	entry, err := h.profiles.Upsert(c.Request.Context(), callerID, service.UpsertInput{
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: req.ProficiencyLevel,
		WantToLearn:      req.WantToLearn,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListUserSkills GET /users/:id/skills
func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	skills, err := h.profiles.ListForUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}
