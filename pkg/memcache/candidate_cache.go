// Package memcache caches point-of-interest search results per destination.
package memcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"tripplanner/internal/planner"
)

// CandidateCache stores candidate lists by destination. A miss is (nil, false, nil).
type CandidateCache interface {
	Get(ctx context.Context, destination string) ([]planner.PointOfInterest, bool, error)
	Set(ctx context.Context, destination string, points []planner.PointOfInterest) error
	Invalidate(ctx context.Context, destination string) error
}

// NormalizeKey folds case and whitespace so "  Da Nang" and "da nang" share an entry.
func NormalizeKey(destination string) string {
	return strings.Join(strings.Fields(strings.ToLower(destination)), " ")
}

type entry struct {
	points    []planner.PointOfInterest
	expiresAt time.Time
}

type InMemoryCandidateCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]entry
}

func NewInMemoryCandidateCache(ttl time.Duration) *InMemoryCandidateCache {
	return &InMemoryCandidateCache{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]entry),
	}
}

func (s *InMemoryCandidateCache) Get(_ context.Context, destination string) ([]planner.PointOfInterest, bool, error) {
	key := NormalizeKey(destination)

	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return append([]planner.PointOfInterest(nil), e.points...), true, nil
}

func (s *InMemoryCandidateCache) Set(_ context.Context, destination string, points []planner.PointOfInterest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[NormalizeKey(destination)] = entry{
		points:    append([]planner.PointOfInterest(nil), points...),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *InMemoryCandidateCache) Invalidate(_ context.Context, destination string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, NormalizeKey(destination))
	return nil
}
