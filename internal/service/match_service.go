package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/models"
)

// Максимальный размер выдачи подбора.
const matchLimit = 10

// MatchStorage описывает запрос кандидатов к слою хранилища.
type MatchStorage interface {
	FindCandidates(ctx context.Context, seekerID uuid.UUID, learnSkillIDs []uuid.UUID, levels []string, limit int) ([]models.MatchCandidate, error)
}

// LearnSetSource отдаёт learn-set пользователя.
type LearnSetSource interface {
	ListLearnSkillIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// MatchService подбирает наставников: пользователей, преподающих навыки из
// learn-set искателя, ранжированных по рейтингу и числу отзывов.
type MatchService struct {
	matches  MatchStorage
	learnSet LearnSetSource
}

// NewMatchService создаёт сервис подбора.
func NewMatchService(matches MatchStorage, learnSet LearnSetSource) *MatchService {
	return &MatchService{matches: matches, learnSet: learnSet}
}

// FindMatches возвращает до 10 кандидатов для пользователя.
// Пустой learn-set — это пустая выдача, а не ошибка: пользователю, который
// ничего не хочет изучать, подбирать некого. Новички в кандидаты не попадают.
// Операция только читает данные и детерминирована при неизменной базе.
func (s *MatchService) FindMatches(ctx context.Context, seekerID uuid.UUID) ([]models.MatchCandidate, error) {
	learnSkillIDs, err := s.learnSet.ListLearnSkillIDs(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("match service: learn-set: %w", err)
	}

	if len(learnSkillIDs) == 0 {
		return []models.MatchCandidate{}, nil
	}

	candidates, err := s.matches.FindCandidates(ctx, seekerID, learnSkillIDs, models.TeachingProficiencyLevels, matchLimit)
	if err != nil {
		return nil, fmt.Errorf("match service: кандидаты: %w", err)
	}

	if candidates == nil {
		candidates = []models.MatchCandidate{}
	}
	return candidates, nil
}
