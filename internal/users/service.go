package users

import (
	"context"
	"errors"

	"github.com/corkboard/corkboard/internal/models"
	"github.com/corkboard/corkboard/internal/password"
)

var (
	// ErrDuplicateEmail is returned on signup when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredential is returned on login for an unknown email or a
	// password mismatch. Both cases map to the same error on purpose.
	ErrInvalidCredential = errors.New("invalid email or password")
)

// Service encapsulates identity business logic over a Repository.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Register creates a new identity with a hashed credential. The existence
// check and the insert are separate operations, so two concurrent signups
// with the same email can race; the unique index in the Mongo repository is
// the only backstop.
func (s *Service) Register(ctx context.Context, email, name, plaintext string) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}
	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}
	u := &models.User{Email: email, Name: name, PasswordHash: hash}
	return s.repo.Insert(ctx, u)
}

// Authenticate verifies a plaintext credential against the stored hash for
// the given email.
func (s *Service) Authenticate(ctx context.Context, email, plaintext string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !password.Verify(plaintext, u.PasswordHash) {
		return nil, ErrInvalidCredential
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
