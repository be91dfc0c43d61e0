package memcache

import (
	"strings"
	"sync"
	"time"

	"findflow/internal/models/response_models"
)

// ResolutionStore caches query -> category resolutions so repeated queries
// skip the embedding and AI stages.
type ResolutionStore interface {
	Set(query string, resolution response_models.CategoryResolution, ttl time.Duration)
	Get(query string) (response_models.CategoryResolution, bool)
	Invalidate()
}

type entry struct {
	resolution response_models.CategoryResolution
	expiresAt  time.Time
}

type Resolutions struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewResolutions() *Resolutions {
	return &Resolutions{
		data: make(map[string]entry),
	}
}

func normalizeKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (s *Resolutions) Set(query string, resolution response_models.CategoryResolution, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[normalizeKey(query)] = entry{
		resolution: resolution,
		expiresAt:  time.Now().Add(ttl),
	}

	// cheap cleanup when the map grows
	if len(s.data) > 1000 {
		for key, e := range s.data {
			if time.Now().After(e.expiresAt) {
				delete(s.data, key)
			}
		}
	}
}

func (s *Resolutions) Get(query string) (response_models.CategoryResolution, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[normalizeKey(query)]
	if !ok || time.Now().After(e.expiresAt) {
		return response_models.CategoryResolution{}, false
	}
	return e.resolution, true
}

// Invalidate drops everything. Called after admin schema changes.
func (s *Resolutions) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]entry)
}
