package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/repository/common"
)

var ErrConnectionNotFound = errors.New("connection not found")

// ConnectionRepository хранит заявки на обмен навыками.
type ConnectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create сохраняет заявку в статусе pending.
func (r *ConnectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	query := `
		INSERT INTO connections (initiator_id, recipient_id, initiator_skill_id, recipient_skill_id, status, session_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		conn.InitiatorID, conn.RecipientID, conn.InitiatorSkillID, conn.RecipientSkillID,
		models.ConnectionStatusPending, conn.SessionDate,
	).Scan(&conn.ID, &conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("connection repository: create: %w", err)
	}
	conn.Status = models.ConnectionStatusPending
	return nil
}

// GetByID возвращает заявку по ID.
func (r *ConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Connection, error) {
	return common.GetByID[models.Connection](ctx, r.db, "connections", id, ErrConnectionNotFound)
}

// UpdateStatusIfPending выполняет условный переход статуса одной командой.
// Возвращает false, если заявка уже вышла из состояния pending: так
// параллельные accept и reject не могут оба завершиться успешно.
func (r *ConnectionRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE connections
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`, id, status, models.ConnectionStatusPending)
	if err != nil {
		return false, fmt.Errorf("connection repository: update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("connection repository: rows affected: %w", err)
	}
	return n > 0, nil
}

// ListForUser возвращает заявки, где пользователь инициатор или получатель,
// дополненные именами участников и навыков, новые первыми.
func (r *ConnectionRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.ConnectionDetail, error) {
	var connections []models.ConnectionDetail
	err := r.db.SelectContext(ctx, &connections, `
		SELECT c.*,
		       u1.username AS initiator_name, u1.avatar AS initiator_avatar,
		       u2.username AS recipient_name, u2.avatar AS recipient_avatar,
		       s1.name AS initiator_skill_name, s2.name AS recipient_skill_name
		FROM connections c
		JOIN users u1 ON c.initiator_id = u1.id
		JOIN users u2 ON c.recipient_id = u2.id
		JOIN skills s1 ON c.initiator_skill_id = s1.id
		JOIN skills s2 ON c.recipient_skill_id = s2.id
		WHERE c.initiator_id = $1 OR c.recipient_id = $1
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("connection repository: list for user: %w", err)
	}
	return connections, nil
}
