package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/skillswap-backend/internal/models"
)

// SkillProfileRepository хранит связи (пользователь, навык) с уровнем
// владения и флагом «хочу изучить».
type SkillProfileRepository struct {
	db *sqlx.DB
}

func NewSkillProfileRepository(db *sqlx.DB) *SkillProfileRepository {
	return &SkillProfileRepository{db: db}
}

// Upsert атомарно создаёт или заменяет запись для пары (user_id, skill_id).
// Конфликт разрешается на уровне базы, чтобы параллельные запросы одного
// пользователя не создавали дубликатов.
func (r *SkillProfileRepository) Upsert(ctx context.Context, entry *models.UserSkill) error {
	query := `
		INSERT INTO user_skills (user_id, skill_id, proficiency_level, want_to_learn)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, skill_id) DO UPDATE
		SET proficiency_level = EXCLUDED.proficiency_level,
		    want_to_learn = EXCLUDED.want_to_learn,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		entry.UserID, entry.SkillID, entry.ProficiencyLevel, entry.WantToLearn,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("skill profile repository: upsert: %w", err)
	}
	return nil
}

// ListForUser возвращает записи пользователя вместе с данными навыка.
func (r *SkillProfileRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetail, error) {
	var entries []models.UserSkillDetail
	err := r.db.SelectContext(ctx, &entries, `
		SELECT s.id AS skill_id, s.name, s.description, s.category,
		       us.proficiency_level, us.want_to_learn
		FROM user_skills us
		JOIN skills s ON us.skill_id = s.id
		WHERE us.user_id = $1
		ORDER BY s.category, s.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("skill profile repository: list for user: %w", err)
	}
	return entries, nil
}

// ListLearnSkillIDs возвращает learn-set пользователя: навыки с want_to_learn = true.
func (r *SkillProfileRepository) ListLearnSkillIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, `
		SELECT skill_id FROM user_skills WHERE user_id = $1 AND want_to_learn = TRUE
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("skill profile repository: list learn skills: %w", err)
	}
	return ids, nil
}

// HasEntry проверяет, есть ли у пользователя запись на навык с заданным намерением.
// wantToLearn = false соответствует teach-set, true — learn-set.
func (r *SkillProfileRepository) HasEntry(ctx context.Context, userID, skillID uuid.UUID, wantToLearn bool) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM user_skills
			WHERE user_id = $1 AND skill_id = $2 AND want_to_learn = $3
		)
	`, userID, skillID, wantToLearn)
	if err != nil {
		return false, fmt.Errorf("skill profile repository: has entry: %w", err)
	}
	return exists, nil
}
