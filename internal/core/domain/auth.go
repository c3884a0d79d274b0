package domain

// LoginInput holds admin credentials.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Tokens is the pair issued on login and refresh.
// RefreshToken may be empty on refresh when the backend does not rotate it.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// LoginPayload is the payload of a successful login.
type LoginPayload struct {
	Tokens
	Admin *Admin `json:"admin,omitempty"`
}
