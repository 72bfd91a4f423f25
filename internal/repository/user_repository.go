package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/repository/common"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserDuplicate = errors.New("user already exists")
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет нового пользователя. Нарушение уникальности username или
// email возвращается как ErrUserDuplicate: решение принимает сам индекс,
// без гонки между предварительной проверкой и вставкой.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, bio, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.Bio, user.Location,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrUserDuplicate
		}
		return fmt.Errorf("user repository: create: %w", err)
	}
	return nil
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return common.GetByID[models.User](ctx, r.db, "users", id, ErrUserNotFound)
}

// GetByEmail возвращает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return common.GetByField[models.User](ctx, r.db, "users", "email", email, ErrUserNotFound)
}

// GetPublicProfile возвращает публичные поля профиля.
func (r *UserRepository) GetPublicProfile(ctx context.Context, id uuid.UUID) (*models.PublicProfile, error) {
	var profile models.PublicProfile
	err := r.db.GetContext(ctx, &profile, `
		SELECT id, username, first_name, last_name, bio, avatar, location
		FROM users WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get public profile: %w", err)
	}
	return &profile, nil
}

// Exists проверяет наличие пользователя.
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("user repository: exists: %w", err)
	}
	return exists, nil
}

// UpdateProfile обновляет изменяемые поля профиля.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, bio = $4, location = $5, avatar = $6, updated_at = NOW()
		WHERE id = $1
	`, user.ID, user.FirstName, user.LastName, user.Bio, user.Location, user.Avatar)
	if err != nil {
		return fmt.Errorf("user repository: update profile: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateAvatar сохраняет ссылку на загруженный аватар.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET avatar = $2, updated_at = NOW() WHERE id = $1
	`, id, avatar)
	if err != nil {
		return fmt.Errorf("user repository: update avatar: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateLastLoginAt отмечает время последнего входа.
func (r *UserRepository) UpdateLastLoginAt(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}

// CreateSession сохраняет сессию с refresh токеном.
func (r *UserRepository) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (user_id, refresh_token, user_agent, ip_address, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRowxContext(ctx, query,
		session.UserID, session.RefreshToken, session.UserAgent, session.IPAddress, session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt)
}

// GetSessionByToken возвращает сессию по refresh токену.
func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (*models.Session, error) {
	var session models.Session
	err := r.db.GetContext(ctx, &session, `SELECT * FROM sessions WHERE refresh_token = $1`, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get session: %w", err)
	}
	return &session, nil
}

// DeleteSession удаляет сессию по refresh токену.
func (r *UserRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE refresh_token = $1`, refreshToken)
	return err
}

// Search выполняет текстовый поиск по пользователям и их навыкам.
// Подстрочное совпадение без ранжирования, в отличие от подбора наставников.
func (r *UserRepository) Search(ctx context.Context, query, category string, limit int) ([]models.UserSearchResult, error) {
	sqlQuery := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.bio, u.avatar,
		       string_agg(DISTINCT s.name, ',') AS skills
		FROM users u
		LEFT JOIN user_skills us ON u.id = us.user_id
		LEFT JOIN skills s ON us.skill_id = s.id
		WHERE 1=1
	`
	args := []interface{}{}

	if query != "" {
		term := "%" + query + "%"
		args = append(args, term)
		n := len(args)
		sqlQuery += fmt.Sprintf(` AND (u.username ILIKE $%d OR u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR s.name ILIKE $%d)`, n, n, n, n)
	}
	if category != "" {
		args = append(args, "%"+category+"%")
		sqlQuery += fmt.Sprintf(` AND s.category ILIKE $%d`, len(args))
	}

	args = append(args, limit)
	sqlQuery += fmt.Sprintf(` GROUP BY u.id ORDER BY u.username LIMIT $%d`, len(args))

	var results []models.UserSearchResult
	if err := r.db.SelectContext(ctx, &results, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("user repository: search: %w", err)
	}
	return results, nil
}
