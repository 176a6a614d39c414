package history

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/baldhumanity/robomaze/mazega"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string][]mazega.GenerationStats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string][]mazega.GenerationStats)
	return nil
}

// SaveGeneration appends stats to the run, replacing an earlier record of the same generation.
func (s *MemoryStore) SaveGeneration(_ context.Context, runID string, stats mazega.GenerationStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	records := s.runs[runID]
	for i := range records {
		if records[i].Generation == stats.Generation {
			records[i] = stats
			return nil
		}
	}
	s.runs[runID] = append(records, stats)
	return nil
}

func (s *MemoryStore) Generations(_ context.Context, runID string) ([]mazega.GenerationStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.runs[runID]
	if !ok {
		return nil, false, nil
	}
	out := make([]mazega.GenerationStats, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool { return out[i].Generation < out[j].Generation })
	return out, true, nil
}

func (s *MemoryStore) Runs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
