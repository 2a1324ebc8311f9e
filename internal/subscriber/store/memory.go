package store

import (
	"context"
	"sync"

	"leaders/internal/subscriber/models"
	"leaders/pkg/platform/sentinel"
)

// Memory keeps subscribers in process memory for tests and local runs.
type Memory struct {
	mu          sync.RWMutex
	subscribers map[string]models.Subscriber
}

func NewMemory() *Memory {
	return &Memory{subscribers: make(map[string]models.Subscriber)}
}

func (m *Memory) Insert(_ context.Context, sub *models.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.subscribers[sub.Email]; exists {
		return sentinel.ErrConflict
	}
	m.subscribers[sub.Email] = *sub
	return nil
}

func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers), nil
}
