package session

import (
	"context"
	"sync"
)

// Store persists the session blob across app launches, standing in for the
// device key-value store the mobile apps use.
type Store interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context) (*Session, error) // nil, nil when no session is stored
	Clear(ctx context.Context) error
}

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu sync.Mutex
	s  *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = &s
	return nil
}

func (m *MemoryStore) Load(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s == nil {
		return nil, nil
	}
	cp := *m.s
	return &cp, nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = nil
	return nil
}
