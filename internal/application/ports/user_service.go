package ports

import (
	"context"

	"userdocs-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	CreateUser(ctx context.Context, email, passwordHash string) (*user.User, error)
	UpdateProfile(ctx context.Context, id user.ID, name, avatarURL *string) (*user.User, error)
}
