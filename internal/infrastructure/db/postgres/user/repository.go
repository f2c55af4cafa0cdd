package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uint64(id)).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

// CreateUser relies on the unique constraint on users.email rather than a
// prior lookup, so concurrent signups with the same email can't both win.
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash string) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		email, passwordHash,
	).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.AvatarURL,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

// UpdateProfile is a partial update: nil name / nil avatarURL leave the stored
// values untouched.
func (r *Repository) UpdateProfile(ctx context.Context, id user.ID, name, avatarURL *string) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateProfileByID,
		uint64(id), name, avatarURL,
	).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}
