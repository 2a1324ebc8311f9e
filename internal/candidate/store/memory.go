package store

import (
	"context"
	"sort"
	"sync"

	"leaders/internal/candidate/models"
)

// Memory keeps candidates in process memory for tests and local runs. It
// favors clarity over performance.
type Memory struct {
	mu         sync.RWMutex
	candidates []models.Candidate
}

func NewMemory(seed ...models.Candidate) *Memory {
	m := &Memory{}
	m.Put(seed...)
	return m
}

// Put adds or replaces candidates by ID.
func (m *Memory) Put(candidates ...models.Candidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range candidates {
		replaced := false
		for i := range m.candidates {
			if m.candidates[i].ID == c.ID {
				m.candidates[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			m.candidates = append(m.candidates, c)
		}
	}
}

// List returns a copy of every candidate ordered by name ascending,
// matching the system of record's SELECT ... ORDER BY name ASC.
func (m *Memory) List(_ context.Context) ([]models.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Candidate, len(m.candidates))
	copy(out, m.candidates)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
