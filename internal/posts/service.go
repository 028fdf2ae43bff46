package posts

import (
	"context"
	"time"

	"github.com/corkboard/corkboard/internal/models"
)

// Service encapsulates the content operations over a Repository.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Create stamps the creation time with the server clock (UTC) and embeds the
// author snapshot: the authenticated user when there is one, otherwise the
// free-text name from the form.
func (s *Service) Create(ctx context.Context, who models.Identity, name, message string) (string, error) {
	a := Author{Name: name}
	if u, ok := who.(*models.User); ok && u.HasID() {
		a = Author{ID: u.ID, Name: u.Name}
	}
	p := &Post{
		Author:    a,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (*Post, error) {
	return s.repo.Get(ctx, id)
}

// ListRecent returns all posts sorted by creation time descending.
func (s *Service) ListRecent(ctx context.Context) ([]*Post, error) {
	return s.repo.ListRecent(ctx)
}

// ListByAuthor returns the posts whose embedded author snapshot references
// the given user, newest first.
func (s *Service) ListByAuthor(ctx context.Context, userID string) ([]*Post, error) {
	return s.repo.ListByAuthor(ctx, userID)
}

// Update replaces the message (and the displayed name when given) and stamps
// the modification time. Updating an absent id is a silent no-op.
func (s *Service) Update(ctx context.Context, id, message string, name *string) error {
	return s.repo.Update(ctx, id, message, name)
}

// Delete removes the post. Deleting an absent id is a no-op, so the call is
// idempotent.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
