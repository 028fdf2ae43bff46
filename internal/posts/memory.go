package posts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps posts in process memory in insertion order. It backs
// unit tests and the degraded fallback when MongoDB is unreachable.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts []*Post
}

func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

func (r *MemoryRepository) Insert(ctx context.Context, p *Post) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	cp := *p
	r.posts = append(r.posts, &cp)
	return p.ID, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) ListRecent(ctx context.Context) ([]*Post, error) {
	return r.list(func(*Post) bool { return true }), nil
}

func (r *MemoryRepository) ListByAuthor(ctx context.Context, userID string) ([]*Post, error) {
	return r.list(func(p *Post) bool { return p.Author.ID == userID }), nil
}

// list copies the matching posts and sorts them newest first. The stable
// sort keeps insertion order for equal timestamps.
func (r *MemoryRepository) list(match func(*Post) bool) []*Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*Post{}
	for _, p := range r.posts {
		if match(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MemoryRepository) Update(ctx context.Context, id, message string, name *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			p.Message = message
			if name != nil {
				p.Author.Name = *name
			}
			now := time.Now().UTC()
			p.ModifiedAt = &now
			return nil
		}
	}
	// absent id: silent no-op
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return nil
}
