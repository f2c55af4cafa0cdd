package user

type (
	User struct {
		ID        uint64  `json:"id"`
		Email     string  `json:"email"`
		Name      *string `json:"name"`
		AvatarURL *string `json:"avatar_url"`
	}
)
