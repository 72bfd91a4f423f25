package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/skillswap-backend/internal/models"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create создаёт отзыв.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (from_user_id, to_user_id, connection_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		review.FromUserID, review.ToUserID, review.ConnectionID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("review repository: create: %w", err)
	}
	return nil
}

// ListByUser возвращает отзывы о пользователе, новые первыми.
func (r *ReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReviewDetail, error) {
	var reviews []models.ReviewDetail
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT r.*, u.username AS author_username
		FROM reviews r
		JOIN users u ON r.from_user_id = u.id
		WHERE r.to_user_id = $1
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("review repository: list by user: %w", err)
	}
	return reviews, nil
}

// GetAverageRating возвращает средний рейтинг и число отзывов о пользователе.
func (r *ReviewRepository) GetAverageRating(ctx context.Context, userID uuid.UUID) (float64, int, error) {
	var result struct {
		Avg   sql.NullFloat64 `db:"avg"`
		Count int             `db:"count"`
	}
	err := r.db.GetContext(ctx, &result, `
		SELECT AVG(rating) AS avg, COUNT(*) AS count FROM reviews WHERE to_user_id = $1
	`, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("review repository: get average rating: %w", err)
	}
	return result.Avg.Float64, result.Count, nil
}
