package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)
	UpdateProfile(ctx context.Context, id ID, name, avatarURL *string) (*User, error)
}
