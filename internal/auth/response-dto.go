package auth

import "cineplex/internal/users"

// represents the authentication response
type AuthResponse struct {
	User         *users.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`

	// set on sign-up only
	Password *PasswordFeedback `json:"password,omitempty"`
}

// PasswordFeedback rates a newly chosen password for the sign-up meter
type PasswordFeedback struct {
	Score    int    `json:"score"`
	Strength string `json:"strength"`
}

// ForgotPasswordResponse carries the reset token in place of an email
type ForgotPasswordResponse struct {
	ResetToken string `json:"reset_token"`
	ExpiresIn  int64  `json:"expires_in"`
}
