package user

type (
	User struct {
		ID           uint64
		Email        string
		PasswordHash string
		Name         *string
		AvatarURL    *string
	}
)
