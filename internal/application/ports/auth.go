package ports

import (
	"userdocs-api/internal/domain/user"
)

type Auth interface {
	HashPassword(password string) (string, error)
	GenerateToken(u *user.User, requestPassword string) (string, error)
	IssueToken(u *user.User) (string, error)
}
