package service

import (
	"context"
	"strings"

	"github.com/ignatzorin/skillswap-backend/internal/models"
)

// Максимальный размер выдачи поиска.
const searchLimit = 20

// SearchStorage описывает поисковый запрос к слою хранилища.
type SearchStorage interface {
	Search(ctx context.Context, query, category string, limit int) ([]models.UserSearchResult, error)
}

// SearchService — текстовый поиск по пользователям и навыкам.
// Подстрочное совпадение без ранжирования; ранжированный подбор наставников
// делает MatchService.
type SearchService struct {
	storage SearchStorage
}

// NewSearchService создаёт сервис поиска.
func NewSearchService(storage SearchStorage) *SearchService {
	return &SearchService{storage: storage}
}

// Search ищет пользователей по подстроке имени или навыка и фильтру категории.
func (s *SearchService) Search(ctx context.Context, query, category string) ([]models.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	category = strings.TrimSpace(category)

	results, err := s.storage.Search(ctx, query, category, searchLimit)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.UserSearchResult{}
	}
	return results, nil
}
