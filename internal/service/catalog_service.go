package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
)

// CatalogStorage описывает зависимости сервиса от слоя хранилища.
type CatalogStorage interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error)
}

// CatalogService отдаёт каталог навыков через read-through кэш.
// Каталог append-only, поэтому кэш живёт до истечения TTL.
type CatalogService struct {
	storage  CatalogStorage
	cache    *CacheService
	cacheTTL time.Duration
}

// NewCatalogService создаёт сервис каталога.
func NewCatalogService(storage CatalogStorage, cache *CacheService, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{storage: storage, cache: cache, cacheTTL: cacheTTL}
}

// ListSkills возвращает весь каталог, сгруппированный по категориям.
func (s *CatalogService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	if cached, ok := s.cache.Get(CacheKeyCatalog); ok {
		if skills, ok := cached.([]models.Skill); ok {
			return skills, nil
		}
	}

	skills, err := s.storage.List(ctx)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []models.Skill{}
	}

	s.cache.Set(CacheKeyCatalog, skills, s.cacheTTL)

	return skills, nil
}

// GetSkill возвращает навык каталога по ID.
func (s *CatalogService) GetSkill(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	skill, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, apperror.ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}
