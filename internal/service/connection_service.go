package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
)

// TTL кэша списков заявок. Короткий: список меняется при каждом создании
// или переходе статуса и инвалидируется явно.
const connectionsCacheTTL = 30 * time.Second

// ConnectionStorage описывает зависимости сервиса от слоя хранилища.
type ConnectionStorage interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Connection, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.ConnectionDetail, error)
}

// ProfileChecker проверяет записи профиля навыков инициатора.
type ProfileChecker interface {
	HasEntry(ctx context.Context, userID, skillID uuid.UUID, wantToLearn bool) (bool, error)
}

// UserChecker проверяет существование получателя.
type UserChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ConnectionService управляет жизненным циклом заявок на обмен:
// pending -> accepted | rejected, переход выполняет только получатель.
type ConnectionService struct {
	connections ConnectionStorage
	profiles    ProfileChecker
	users       UserChecker
	cache       *CacheService
}

// NewConnectionService создаёт сервис заявок.
func NewConnectionService(connections ConnectionStorage, profiles ProfileChecker, users UserChecker, cache *CacheService) *ConnectionService {
	return &ConnectionService{
		connections: connections,
		profiles:    profiles,
		users:       users,
		cache:       cache,
	}
}

// CreateConnectionInput — данные заявки от инициатора.
type CreateConnectionInput struct {
	RecipientID      uuid.UUID
	InitiatorSkillID uuid.UUID
	RecipientSkillID uuid.UUID
	SessionDate      *time.Time
}

// Create создаёт заявку в статусе pending от имени callerID.
// InitiatorSkillID должен входить в teach-set инициатора, RecipientSkillID —
// в его learn-set. Все проверки выполняются до записи. Дубликаты pending
// заявок между той же парой допускаются: новая заявка создаёт новую запись.
func (s *ConnectionService) Create(ctx context.Context, callerID uuid.UUID, in CreateConnectionInput) (*models.Connection, error) {
	if callerID == in.RecipientID {
		return nil, apperror.New(apperror.ErrCodeValidation, "нельзя отправить заявку самому себе")
	}

	exists, err := s.users.Exists(ctx, in.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("connection service: проверка получателя: %w", err)
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}

	teaches, err := s.profiles.HasEntry(ctx, callerID, in.InitiatorSkillID, false)
	if err != nil {
		return nil, fmt.Errorf("connection service: проверка teach-set: %w", err)
	}
	if !teaches {
		return nil, apperror.New(apperror.ErrCodeValidation, "предлагаемый навык отсутствует в вашем списке преподаваемых")
	}

	// Навык получателя означает «что я хочу изучить»; профиль получателя
	// при этом не проверяется — он подтверждает обмен, принимая заявку.
	learns, err := s.profiles.HasEntry(ctx, callerID, in.RecipientSkillID, true)
	if err != nil {
		return nil, fmt.Errorf("connection service: проверка learn-set: %w", err)
	}
	if !learns {
		return nil, apperror.New(apperror.ErrCodeValidation, "запрашиваемый навык отсутствует в вашем списке изучаемых")
	}

	conn := &models.Connection{
		InitiatorID:      callerID,
		RecipientID:      in.RecipientID,
		InitiatorSkillID: in.InitiatorSkillID,
		RecipientSkillID: in.RecipientSkillID,
		SessionDate:      in.SessionDate,
	}

	if err := s.connections.Create(ctx, conn); err != nil {
		return nil, err
	}

	s.cache.InvalidateConnections(conn.InitiatorID, conn.RecipientID)

	return conn, nil
}

// UpdateStatus переводит заявку из pending в accepted или rejected.
// Разрешено только получателю. Проверка прав выполняется до записи, сама
// запись — одним условным UPDATE: из двух параллельных переходов успешным
// будет ровно один, второй получит INVALID_STATE.
func (s *ConnectionService) UpdateStatus(ctx context.Context, callerID, connectionID uuid.UUID, status string) (*models.Connection, error) {
	if _, ok := models.TransitionTargetStatuses[status]; !ok {
		return nil, apperror.New(apperror.ErrCodeValidation,
			fmt.Sprintf("недопустимый целевой статус %q", status))
	}

	conn, err := s.connections.GetByID(ctx, connectionID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, apperror.ErrConnectionNotFound
		}
		return nil, err
	}

	if conn.RecipientID != callerID {
		return nil, apperror.New(apperror.ErrCodeForbidden, "статус заявки меняет только получатель")
	}

	updated, err := s.connections.UpdateStatusIfPending(ctx, connectionID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.New(apperror.ErrCodeInvalidState, "заявка уже обработана")
	}

	conn.Status = status
	s.cache.InvalidateConnections(conn.InitiatorID, conn.RecipientID)

	return conn, nil
}

// ListForUser возвращает заявки пользователя в обе стороны, новые первыми.
// Результат читается через кэш.
func (s *ConnectionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.ConnectionDetail, error) {
	key := ConnectionsCacheKey(userID)
	if cached, ok := s.cache.Get(key); ok {
		if connections, ok := cached.([]models.ConnectionDetail); ok {
			return connections, nil
		}
	}

	connections, err := s.connections.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if connections == nil {
		connections = []models.ConnectionDetail{}
	}

	s.cache.Set(key, connections, connectionsCacheTTL)

	return connections, nil
}
