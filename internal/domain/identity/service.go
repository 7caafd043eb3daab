package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/healthassist/healthassist/internal/platform/auth"
)

// ErrInvalidInput marks errors caused by a bad submission rather than an
// internal failure.
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// GetOrCreate returns the user row for the verified identity, creating or
// refreshing it from the token claims. This is how accounts come into
// existence: the first authenticated request upserts the row.
func (s *Service) GetOrCreate(ctx context.Context, id *auth.Identity) (*User, error) {
	if id == nil || id.UserID == "" {
		return nil, fmt.Errorf("identity is required")
	}

	u := &User{ID: id.UserID}
	if id.Email != "" {
		u.Email = &id.Email
	}
	if id.FirstName != "" {
		u.FirstName = &id.FirstName
	}
	if id.LastName != "" {
		u.LastName = &id.LastName
	}
	if id.ProfileImageURL != "" {
		u.ProfileImageURL = &id.ProfileImageURL
	}

	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", id.UserID, err)
	}
	return u, nil
}

// Ensure guarantees the user row for the verified identity exists. Domain
// writes that reference users(id) call this before inserting, so an account
// comes into existence on its first authenticated request regardless of which
// endpoint that request hits.
func (s *Service) Ensure(ctx context.Context, id *auth.Identity) error {
	_, err := s.GetOrCreate(ctx, id)
	return err
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.users.GetByID(ctx, id)
}

var validGenders = map[string]bool{
	"male": true, "female": true, "other": true, "prefer-not-to-say": true,
}

// UpdateProfile applies a demographic edit for the given user.
func (s *Service) UpdateProfile(ctx context.Context, id string, p *ProfileUpdate) (*User, error) {
	if p.Gender != nil && !validGenders[*p.Gender] {
		return nil, fmt.Errorf("%w: invalid gender %q", ErrInvalidInput, *p.Gender)
	}
	return s.users.UpdateProfile(ctx, id, p)
}
