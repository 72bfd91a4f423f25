package models

import (
	"time"

	"github.com/google/uuid"
)

// Review описывает отзыв одного пользователя о другом после обмена.
type Review struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FromUserID   uuid.UUID  `db:"from_user_id" json:"from_user_id"`
	ToUserID     uuid.UUID  `db:"to_user_id" json:"to_user_id"`
	ConnectionID *uuid.UUID `db:"connection_id" json:"connection_id,omitempty"`
	Rating       int        `db:"rating" json:"rating"`
	Comment      *string    `db:"comment" json:"comment,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// ReviewDetail — отзыв с именем автора.
type ReviewDetail struct {
	Review
	AuthorUsername string `db:"author_username" json:"author_username"`
}

// UserRating — агрегированный рейтинг пользователя.
type UserRating struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}
