package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"userdocs-api/internal/application/ports"
	"userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const accessTokenTTL = 60 * time.Minute

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateToken checks the password against the stored hash before minting.
// A malformed stored hash fails the comparison the same way a wrong password
// does, so callers can't tell the two apart.
func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return as.IssueToken(u)
}

// IssueToken mints without a password check; the signup path uses it right
// after creating the row.
func (as *AuthService) IssueToken(u *user.User) (string, error) {
	token, err := as.jwtService.GenerateJWT(uint64(u.ID), u.Email, accessTokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
