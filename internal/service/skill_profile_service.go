package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
)

// SkillProfileStorage описывает зависимости сервиса от слоя хранилища.
type SkillProfileStorage interface {
	Upsert(ctx context.Context, entry *models.UserSkill) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetail, error)
}

// SkillCatalog описывает доступный сервису срез каталога навыков.
type SkillCatalog interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// SkillProfileService управляет записями (пользователь, навык): уровень
// владения плюс намерение преподавать или изучать.
type SkillProfileService struct {
	profiles SkillProfileStorage
	catalog  SkillCatalog
}

// NewSkillProfileService создаёт сервис профиля навыков.
func NewSkillProfileService(profiles SkillProfileStorage, catalog SkillCatalog) *SkillProfileService {
	return &SkillProfileService{profiles: profiles, catalog: catalog}
}

// UpsertInput — данные запроса на добавление или замену записи.
type UpsertInput struct {
	UserID           uuid.UUID
	SkillID          uuid.UUID
	ProficiencyLevel string
	WantToLearn      bool
}

// Upsert создаёт или заменяет запись для пары (пользователь, навык).
// Повторное добавление того же навыка заменяет прежнюю запись целиком,
// поэтому один навык не может быть одновременно преподаваемым и изучаемым.
func (s *SkillProfileService) Upsert(ctx context.Context, callerID uuid.UUID, in UpsertInput) (*models.UserSkill, error) {
	if callerID != in.UserID {
		return nil, apperror.New(apperror.ErrCodeForbidden, "навыки можно менять только в своём профиле")
	}

	if _, ok := models.ValidProficiencyLevels[in.ProficiencyLevel]; !ok {
		return nil, apperror.New(apperror.ErrCodeValidation,
			fmt.Sprintf("неизвестный уровень владения %q", in.ProficiencyLevel))
	}

	exists, err := s.catalog.Exists(ctx, in.SkillID)
	if err != nil {
		return nil, fmt.Errorf("skill profile service: проверка навыка: %w", err)
	}
	if !exists {
		return nil, apperror.ErrSkillNotFound
	}

	entry := &models.UserSkill{
		UserID:           in.UserID,
		SkillID:          in.SkillID,
		ProficiencyLevel: in.ProficiencyLevel,
		WantToLearn:      in.WantToLearn,
	}

	if err := s.profiles.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListForUser возвращает все записи пользователя вместе с данными навыков.
// Разделение на teach-set и learn-set выполняет вызывающая сторона.
func (s *SkillProfileService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetail, error) {
	entries, err := s.profiles.ListForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, err
	}
	return entries, nil
}
