package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill представляет навык из каталога платформы.
// Каталог append-only: навыки не удаляются, пока на них есть ссылки.
type Skill struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Category    string    `db:"category" json:"category"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// UserSkill — связь пользователя с навыком каталога.
// Уникальна по паре (user_id, skill_id): повторное добавление заменяет запись.
type UserSkill struct {
	ID               uuid.UUID `db:"id" json:"id"`
	UserID           uuid.UUID `db:"user_id" json:"user_id"`
	SkillID          uuid.UUID `db:"skill_id" json:"skill_id"`
	ProficiencyLevel string    `db:"proficiency_level" json:"proficiency_level"`
	WantToLearn      bool      `db:"want_to_learn" json:"want_to_learn"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// UserSkillDetail — запись пользователя, дополненная данными навыка.
type UserSkillDetail struct {
	SkillID          uuid.UUID `db:"skill_id" json:"skill_id"`
	Name             string    `db:"name" json:"name"`
	Description      *string   `db:"description" json:"description,omitempty"`
	Category         string    `db:"category" json:"category"`
	ProficiencyLevel string    `db:"proficiency_level" json:"proficiency_level"`
	WantToLearn      bool      `db:"want_to_learn" json:"want_to_learn"`
}
