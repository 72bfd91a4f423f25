package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/skillswap-backend/internal/models"
)

// MatchRepository выполняет запрос подбора наставников.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// FindCandidates возвращает пользователей, преподающих хотя бы один навык из
// learn-set искателя на достаточном уровне. Отзывы агрегируются в подзапросе,
// чтобы совпадение по нескольким навыкам не искажало счётчик и средний рейтинг.
// Кандидаты без отзывов сортируются после кандидатов с рейтингом.
func (r *MatchRepository) FindCandidates(ctx context.Context, seekerID uuid.UUID, learnSkillIDs []uuid.UUID, levels []string, limit int) ([]models.MatchCandidate, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.bio, u.avatar, u.location,
		       string_agg(DISTINCT s.name, ',') AS teaching_skills,
		       COALESCE(rv.review_count, 0) AS review_count,
		       rv.average_rating
		FROM users u
		JOIN user_skills us ON u.id = us.user_id
		JOIN skills s ON us.skill_id = s.id
		LEFT JOIN (
			SELECT to_user_id, COUNT(*) AS review_count, AVG(rating) AS average_rating
			FROM reviews
			GROUP BY to_user_id
		) rv ON rv.to_user_id = u.id
		WHERE us.skill_id IN (?)
		  AND us.want_to_learn = FALSE
		  AND us.proficiency_level IN (?)
		  AND u.id <> ?
		GROUP BY u.id, rv.review_count, rv.average_rating
		ORDER BY rv.average_rating DESC NULLS LAST, rv.review_count DESC NULLS LAST
		LIMIT ?
	`

	query, args, err := sqlx.In(query, learnSkillIDs, levels, seekerID, limit)
	if err != nil {
		return nil, fmt.Errorf("match repository: build query: %w", err)
	}
	query = r.db.Rebind(query)

	var candidates []models.MatchCandidate
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, fmt.Errorf("match repository: find candidates: %w", err)
	}
	return candidates, nil
}
