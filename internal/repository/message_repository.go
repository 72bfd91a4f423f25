package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/skillswap-backend/internal/models"
)

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create сохраняет сообщение.
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (from_user_id, to_user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, msg.FromUserID, msg.ToUserID, msg.Content).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("message repository: create: %w", err)
	}
	return nil
}

// ListInbox возвращает входящие сообщения пользователя, новые первыми.
func (r *MessageRepository) ListInbox(ctx context.Context, userID uuid.UUID, limit int) ([]models.MessageDetail, error) {
	var messages []models.MessageDetail
	err := r.db.SelectContext(ctx, &messages, `
		SELECT m.*, u.username AS sender_username, u.avatar AS sender_avatar
		FROM messages m
		JOIN users u ON m.from_user_id = u.id
		WHERE m.to_user_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("message repository: list inbox: %w", err)
	}
	return messages, nil
}

// MarkRead отмечает сообщение прочитанным. Доступно только получателю.
// Возвращает false, если сообщение не найдено или адресовано другому.
func (r *MessageRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE messages SET is_read = TRUE WHERE id = $1 AND to_user_id = $2
	`, id, recipientID)
	if err != nil {
		return false, fmt.Errorf("message repository: mark read: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("message repository: mark read: %w", err)
	}
	return rows > 0, nil
}
