package models

import (
	"github.com/google/uuid"
)

// MatchCandidate — потенциальный наставник в выдаче подбора.
// AverageRating равен nil, если у пользователя ещё нет отзывов;
// такие кандидаты сортируются после любых кандидатов с рейтингом.
type MatchCandidate struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	FirstName      *string   `db:"first_name" json:"first_name,omitempty"`
	LastName       *string   `db:"last_name" json:"last_name,omitempty"`
	Bio            *string   `db:"bio" json:"bio,omitempty"`
	Avatar         *string   `db:"avatar" json:"avatar,omitempty"`
	Location       *string   `db:"location" json:"location,omitempty"`
	TeachingSkills string    `db:"teaching_skills" json:"teaching_skills"`
	ReviewCount    int       `db:"review_count" json:"review_count"`
	AverageRating  *float64  `db:"average_rating" json:"average_rating"`
}

// UserSearchResult — результат текстового поиска по пользователям и навыкам.
type UserSearchResult struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	FirstName *string   `db:"first_name" json:"first_name,omitempty"`
	LastName  *string   `db:"last_name" json:"last_name,omitempty"`
	Bio       *string   `db:"bio" json:"bio,omitempty"`
	Avatar    *string   `db:"avatar" json:"avatar,omitempty"`
	Skills    *string   `db:"skills" json:"skills,omitempty"`
}
