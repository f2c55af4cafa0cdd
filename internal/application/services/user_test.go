package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainUser "userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/mq"
)

func TestUserService_CreateUser_NormalizesEmail(t *testing.T) {
	rmq := newFakeMQ()

	var gotEmail string
	repo := &fakeUserRepo{
		CreateUserFunc: func(ctx context.Context, email, passwordHash string) (*domainUser.User, error) {
			gotEmail = email
			return &domainUser.User{ID: 1, Email: email, PasswordHash: passwordHash}, nil
		},
	}
	us := NewUserService(repo, rmq, testCounter())

	u, err := us.CreateUser(context.Background(), "  Ada@Example.COM ", "hash")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "ada@example.com", gotEmail)

	e := <-rmq.in
	assert.Equal(t, mq.ActionUserCreated, e.Action)
	assert.Equal(t, "1", e.UserID)
}

func TestUserService_CreateUser_RepoError(t *testing.T) {
	rmq := newFakeMQ()

	boom := errors.New("duplicate")
	repo := &fakeUserRepo{
		CreateUserFunc: func(ctx context.Context, email, passwordHash string) (*domainUser.User, error) {
			return nil, boom
		},
	}
	us := NewUserService(repo, rmq, testCounter())

	u, err := us.CreateUser(context.Background(), "a@x.com", "hash")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rmq.in, "no event for a failed signup")
}

func TestUserService_FindByEmail_NormalizesEmail(t *testing.T) {
	var gotEmail string
	repo := &fakeUserRepo{
		FetchUserByEmailFunc: func(ctx context.Context, email string) (*domainUser.User, error) {
			gotEmail = email
			return &domainUser.User{ID: 2, Email: email}, nil
		},
	}
	us := NewUserService(repo, newFakeMQ(), testCounter())

	u, err := us.FindByEmail(context.Background(), "Ada@Example.COM")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "ada@example.com", gotEmail)
}

func TestUserService_UpdateProfile(t *testing.T) {
	rmq := newFakeMQ()

	name := "Ada"
	repo := &fakeUserRepo{
		UpdateProfileFunc: func(ctx context.Context, id domainUser.ID, n, a *string) (*domainUser.User, error) {
			return &domainUser.User{ID: id, Email: "ada@x.com", Name: n, AvatarURL: a}, nil
		},
	}
	us := NewUserService(repo, rmq, testCounter())

	u, err := us.UpdateProfile(context.Background(), 7, &name, nil)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Ada", *u.Name)
	assert.Nil(t, u.AvatarURL)

	e := <-rmq.in
	assert.Equal(t, mq.ActionProfileUpdated, e.Action)
	assert.Equal(t, "7", e.UserID)
}

func TestUserService_UpdateProfile_MissingUser(t *testing.T) {
	rmq := newFakeMQ()

	repo := &fakeUserRepo{
		UpdateProfileFunc: func(ctx context.Context, id domainUser.ID, n, a *string) (*domainUser.User, error) {
			return nil, nil
		},
	}
	us := NewUserService(repo, rmq, testCounter())

	u, err := us.UpdateProfile(context.Background(), 404, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Empty(t, rmq.in, "no event when nothing was updated")
}
