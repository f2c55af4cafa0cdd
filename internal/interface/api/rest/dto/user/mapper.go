package user

import (
	"userdocs-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uint64(uDomain.ID),
		Email:     uDomain.Email,
		Name:      uDomain.Name,
		AvatarURL: uDomain.AvatarURL,
	}

	return u
}
