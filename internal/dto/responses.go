package dto

import (
	"github.com/ignatzorin/skillswap-backend/internal/models"
)

// ErrorResponse represents a standardized error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standardized success payload
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthResponse represents the result of register/login/refresh
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

// UserProfileResponse represents a public profile with skills and reviews
type UserProfileResponse struct {
	*models.PublicProfile
	Skills  []models.UserSkillDetail `json:"skills"`
	Reviews []models.ReviewDetail    `json:"reviews"`
	Rating  *models.UserRating       `json:"rating,omitempty"`
}

// UserReviewsResponse represents a review list with its aggregate
type UserReviewsResponse struct {
	Reviews       []models.ReviewDetail `json:"reviews"`
	AverageRating float64               `json:"average_rating"`
	TotalReviews  int                   `json:"total_reviews"`
}
