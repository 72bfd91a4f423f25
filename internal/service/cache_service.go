package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/goroutine"
)

// CacheService — in-memory кэш с TTL и инвалидацией по префиксу.
// Используется как явный read-through кэш для каталога навыков и списков
// заявок: запись инвалидируется при изменении, а не живёт как глобальное
// состояние.
type CacheService struct {
	mu    sync.RWMutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// Ключи кэша.
const (
	CacheKeyCatalog          = "catalog:skills"
	cacheKeyConnectionsScope = "connections:"
)

// ConnectionsCacheKey возвращает ключ кэша списка заявок пользователя.
func ConnectionsCacheKey(userID uuid.UUID) string {
	return cacheKeyConnectionsScope + userID.String()
}

// NewCacheService создаёт кэш и запускает фоновую очистку.
func NewCacheService() *CacheService {
	cs := &CacheService{
		cache: make(map[string]*cacheEntry),
	}

	goroutine.SafeGo(cs.cleanup)

	return cs
}

// Get возвращает значение из кэша, если оно не истекло.
func (cs *CacheService) Get(key string) (interface{}, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, exists := cs.cache[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		// Удаление истёкших записей выполняет cleanup.
		return nil, false
	}

	return entry.data, true
}

// Set сохраняет значение с заданным TTL.
func (cs *CacheService) Set(key string, value interface{}, ttl time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache[key] = &cacheEntry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete удаляет ключ из кэша.
func (cs *CacheService) Delete(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
}

// InvalidateByPrefix удаляет все ключи с заданным префиксом.
func (cs *CacheService) InvalidateByPrefix(prefix string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key := range cs.cache {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(cs.cache, key)
		}
	}
}

// InvalidateConnections сбрасывает кэш списков заявок обоих участников.
func (cs *CacheService) InvalidateConnections(userIDs ...uuid.UUID) {
	for _, id := range userIDs {
		cs.Delete(ConnectionsCacheKey(id))
	}
}

// cleanup периодически удаляет истёкшие записи.
func (cs *CacheService) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		cs.mu.Lock()
		for key, entry := range cs.cache {
			if now.After(entry.expiresAt) {
				delete(cs.cache, key)
			}
		}
		cs.mu.Unlock()
	}
}
