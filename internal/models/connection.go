package models

import (
	"time"

	"github.com/google/uuid"
)

// Connection — заявка на обмен навыками между двумя пользователями.
// Инициатор указывает, какой навык он готов преподать и какой хочет изучить.
// Статус меняет только получатель.
type Connection struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	InitiatorID      uuid.UUID  `db:"initiator_id" json:"initiator_id"`
	RecipientID      uuid.UUID  `db:"recipient_id" json:"recipient_id"`
	InitiatorSkillID uuid.UUID  `db:"initiator_skill_id" json:"initiator_skill_id"`
	RecipientSkillID uuid.UUID  `db:"recipient_skill_id" json:"recipient_skill_id"`
	Status           string     `db:"status" json:"status"`
	SessionDate      *time.Time `db:"session_date" json:"session_date,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// ConnectionDetail — заявка, дополненная именами участников и навыков.
type ConnectionDetail struct {
	Connection
	InitiatorName      string  `db:"initiator_name" json:"initiator_name"`
	InitiatorAvatar    *string `db:"initiator_avatar" json:"initiator_avatar,omitempty"`
	RecipientName      string  `db:"recipient_name" json:"recipient_name"`
	RecipientAvatar    *string `db:"recipient_avatar" json:"recipient_avatar,omitempty"`
	InitiatorSkillName string  `db:"initiator_skill_name" json:"initiator_skill_name"`
	RecipientSkillName string  `db:"recipient_skill_name" json:"recipient_skill_name"`
}
