package user

type (
	ID   uint64
	User struct {
		ID           ID
		Email        string
		PasswordHash string
		Name         *string
		AvatarURL    *string
	}
)
