package user

import (
	domain "userdocs-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Name:         model.Name,
		AvatarURL:    model.AvatarURL,
	}

	return u
}
