package sessions

import (
	"context"
	"sync"
	"time"
)

// Repository provides session persistence operations. Get returns (nil, nil)
// for an unknown or expired id.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepository is the default, in-process session store.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.store[s.ID] = &cp
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	if time.Now().UTC().After(s.ExpiresAt) {
		delete(r.store, id)
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, id)
	return nil
}
