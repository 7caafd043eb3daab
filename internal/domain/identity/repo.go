package identity

import "context"

type UserRepository interface {
	Upsert(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, p *ProfileUpdate) (*User, error)
}
