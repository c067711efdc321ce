package domain

import "errors"

var (
	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to log in user"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrSessionNotFound        = errors.New("session not found")
	ErrSessionExpired         = errors.New("session expired")
)

type (
	RegisterRequest struct {
		FullName string `json:"fullName" form:"fullName" validate:"required"`
		Username string `json:"username" form:"username" validate:"required"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Phone    string `json:"phone" form:"phone"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
		Gender   string `json:"gender" form:"gender"`
	}

	LoginRequest struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		FullName string `json:"full_name"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
)
