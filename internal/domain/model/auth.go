package model

type LoginRequest struct {
	Email    string `json:"email" mod:"trim" validate:"required,email" msg:"Invalid email address"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

type RegisterRequest struct {
	Name            string `json:"name" mod:"trim" validate:"required" msg:"Name is required"`
	Email           string `json:"email" mod:"trim" validate:"required,email" msg:"Invalid email address"`
	Password        string `json:"password" validate:"min=8" msg:"Password must be at least 8 characters"`
	ConfirmPassword string `json:"confirmPassword,omitempty" validate:"omitempty,eqfield=Password" msg:"Passwords do not match"`
}

// login/registerの応答。tokenはcookieに入れる
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
