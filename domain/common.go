package domain

import "errors"

const (
	RecipePageSize = 20
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedLogin          = "failed to login"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedHealth         = "database unreachable"

	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAuthDisabled       = errors.New("authentication is disabled")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expires_in"`
	}

	DeletedResponse struct {
		ID uint `json:"id"`
	}

	HealthResponse struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
)
