package dto

import (
	"time"
)

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the request to refresh a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents the request to update profile fields
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Avatar    *string `json:"avatar"`
}

// UpsertSkillRequest represents the request to add or replace a profile skill entry
type UpsertSkillRequest struct {
	SkillID          string `json:"skill_id" binding:"required"`
	ProficiencyLevel string `json:"proficiency_level" binding:"required"`
	WantToLearn      bool   `json:"want_to_learn"`
}

// CreateConnectionRequest represents the request to create a connection
type CreateConnectionRequest struct {
	RecipientID      string     `json:"recipient_id" binding:"required"`
	InitiatorSkillID string     `json:"initiator_skill_id" binding:"required"`
	RecipientSkillID string     `json:"recipient_skill_id" binding:"required"`
	SessionDate      *time.Time `json:"session_date"`
}

// UpdateConnectionStatusRequest represents the request to accept or reject a connection
type UpdateConnectionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SendMessageRequest represents the request to send a direct message
type SendMessageRequest struct {
	ToUserID string `json:"to_user_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// CreateReviewRequest represents the request to leave a review
type CreateReviewRequest struct {
	ToUserID     string  `json:"to_user_id" binding:"required"`
	ConnectionID *string `json:"connection_id"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Comment      *string `json:"comment"`
}
