package auth

type (
	SignupRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)
