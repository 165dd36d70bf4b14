package memory

import (
	"context"
	"sync"
	"time"
)

// MemoryTokenRepo keeps revocations in a process-local map. Good for
// tests and single-instance deployments; with several instances use
// the redis adapter so revocation state is shared.
type MemoryTokenRepo struct {
	mu       sync.Mutex
	deadline map[string]time.Time
}

func NewMemoryTokenRepo() *MemoryTokenRepo {
	return &MemoryTokenRepo{
		deadline: make(map[string]time.Time),
	}
}

func (m *MemoryTokenRepo) RevokeOnce(_ context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if dl, ok := m.deadline[jti]; ok && now.Before(dl) {
		return true, nil
	}
	m.deadline[jti] = now.Add(ttl)
	return false, nil
}

func (m *MemoryTokenRepo) IsRevoked(_ context.Context, jti string) (bool, error) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	dl, ok := m.deadline[jti]
	if !ok {
		return false, nil
	}
	if now.After(dl) {
		delete(m.deadline, jti)
		return false, nil
	}
	return true, nil
}
