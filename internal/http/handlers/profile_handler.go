package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/skillswap-backend/internal/dto"
	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// ProfileHandler обслуживает публичные профили и их редактирование.
type ProfileHandler struct {
	users    *repository.UserRepository
	profiles *service.SkillProfileService
	reviews  *service.ReviewService
}

func NewProfileHandler(users *repository.UserRepository, profiles *service.SkillProfileService, reviews *service.ReviewService) *ProfileHandler {
	return &ProfileHandler{users: users, profiles: profiles, reviews: reviews}
}

// GetUserProfile GET /users/:id
// Публичный профиль вместе с навыками и отзывами.
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	profile, err := h.users.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			common.RespondNotFound(c, "пользователь не найден")
			return
		}
		common.RespondAppError(c, err)
		return
	}

	skills, err := h.profiles.ListForUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	reviews, rating, err := h.reviews.ListUserReviews(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserProfileResponse{
		PublicProfile: profile,
		Skills:        skills,
		Reviews:       reviews,
		Rating:        rating,
	})
}

// UpdateProfile PUT /users/:id
// Профиль редактирует только его владелец.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
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

	if callerID != userID {
		common.RespondForbidden(c, "можно редактировать только свой профиль")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "некорректное тело запроса")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		common.RespondNotFound(c, "пользователь не найден")
		return
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}

	if err := h.users.UpdateProfile(c.Request.Context(), user); err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccess(c, http.StatusOK, "профиль обновлён", user)
}
