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

var ErrSkillNotFound = errors.New("skill not found")

// SkillRepository — доступ к каталогу навыков. Каталог append-only:
// навыки добавляются миграциями либо сидированием и не удаляются.
type SkillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List возвращает весь каталог, сгруппированный по категориям.
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.SelectContext(ctx, &skills, `SELECT * FROM skills ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("skill repository: list: %w", err)
	}
	return skills, nil
}

// GetByID возвращает навык по ID.
func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	return common.GetByID[models.Skill](ctx, r.db, "skills", id, ErrSkillNotFound)
}

// Exists проверяет наличие навыка в каталоге.
func (r *SkillRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("skill repository: exists: %w", err)
	}
	return exists, nil
}

// Create добавляет навык в каталог. Используется сидированием.
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO skills (name, description, category)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description, category = EXCLUDED.category
		RETURNING id, created_at
	`
	return r.db.QueryRowxContext(ctx, query, skill.Name, skill.Description, skill.Category).
		Scan(&skill.ID, &skill.CreatedAt)
}
