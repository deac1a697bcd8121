package dto

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

type ForgotPasswordOutput struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token"`
}

type ResetPasswordInput struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
