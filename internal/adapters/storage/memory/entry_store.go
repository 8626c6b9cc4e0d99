package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

// EntryStore is a simple in-memory implementation of domain.EntryStore.
// It is NOT persistent and is only suitable for development and tests.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[domain.EntryID]*domain.MoodEntry
}

func NewEntryStore() *EntryStore {
	return &EntryStore{
		entries: make(map[domain.EntryID]*domain.MoodEntry),
	}
}

func (s *EntryStore) CreateEntry(ctx context.Context, entry *domain.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *entry
	s.entries[entry.ID] = &cp
	return nil
}

func (s *EntryStore) GetEntry(ctx context.Context, id domain.EntryID) (*domain.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	cp := *entry
	return &cp, nil
}

func (s *EntryStore) ListEntriesByUser(ctx context.Context, userID domain.UserID) ([]*domain.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.MoodEntry
	for _, entry := range s.entries {
		if entry.UserID == userID {
			cp := *entry
			out = append(out, &cp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}

func (s *EntryStore) SetReflection(ctx context.Context, id domain.EntryID, text string, status domain.ReflectionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return domain.ErrNotFound
	}

	now := time.Now()
	entry.ReflectionText = text
	entry.ReflectionStatus = status
	entry.ReflectionGeneratedAt = &now
	entry.UpdatedAt = now
	return nil
}

func (s *EntryStore) SetReflectionStatus(ctx context.Context, id domain.EntryID, status domain.ReflectionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return domain.ErrNotFound
	}

	entry.ReflectionStatus = status
	entry.UpdatedAt = time.Now()
	return nil
}
