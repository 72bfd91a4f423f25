package models

import (
	"time"

	"github.com/google/uuid"
)

// Message — личное сообщение между пользователями. Доставка по запросу (polling).
type Message struct {
	ID         uuid.UUID `db:"id" json:"id"`
	FromUserID uuid.UUID `db:"from_user_id" json:"from_user_id"`
	ToUserID   uuid.UUID `db:"to_user_id" json:"to_user_id"`
	Content    string    `db:"content" json:"content"`
	IsRead     bool      `db:"is_read" json:"is_read"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// MessageDetail — сообщение с данными отправителя.
type MessageDetail struct {
	Message
	SenderUsername string  `db:"sender_username" json:"sender_username"`
	SenderAvatar   *string `db:"sender_avatar" json:"sender_avatar,omitempty"`
}
