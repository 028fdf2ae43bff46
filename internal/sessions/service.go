package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service owns the Anonymous -> Authenticated -> Anonymous transitions for a
// client session.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Create stores a new session for the user and returns its id.
func (s *Service) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return sess.ID, nil
}

// Validate returns the session when the id is known and not expired, nil
// otherwise. Expired sessions are removed on read.
func (s *Service) Validate(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		_ = s.repo.Delete(ctx, id)
		return nil, nil
	}
	return sess, nil
}

// Delete invalidates the session. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
