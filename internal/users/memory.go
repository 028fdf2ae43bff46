package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corkboard/corkboard/internal/models"
)

// MemoryRepository keeps users in process memory. It backs unit tests and
// the degraded mode entered when MongoDB is unreachable at startup.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return u, nil
}
