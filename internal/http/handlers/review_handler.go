package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/dto"
	"github.com/ignatzorin/skillswap-backend/internal/http/handlers/common"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

// ReviewHandler обслуживает отзывы пользователей.
type ReviewHandler struct {
	reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// CreateReview POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	callerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "укажите to_user_id и rating от 1 до 5")
		return
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		common.RespondBadRequest(c, "неверный to_user_id")
		return
	}

	var connectionID *uuid.UUID
	if req.ConnectionID != nil && *req.ConnectionID != "" {
		parsed, err := uuid.Parse(*req.ConnectionID)
		if err != nil {
			common.RespondBadRequest(c, "неверный connection_id")
			return
		}
		connectionID = &parsed
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), callerID, toUserID, connectionID, req.Rating, req.Comment)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListUserReviews GET /users/:id/reviews
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	reviews, rating, err := h.reviews.ListUserReviews(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserReviewsResponse{
		Reviews:       reviews,
		AverageRating: rating.AverageRating,
		TotalReviews:  rating.TotalReviews,
	})
}
