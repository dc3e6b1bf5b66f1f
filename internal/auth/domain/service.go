package domain

import (
	"context"
	"errors"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Service interface {
	Register(context.Context, RegisterRequest) (Usuario, error)
	Login(context.Context, LoginRequest) (TokenResponse, error)
	// VerifyToken validates a bearer token and returns the subject user id.
	VerifyToken(ctx context.Context, token string) (string, error)
}

var (
	ErrInvalidUsername    = errors.New("invalid_username")
	ErrInvalidPassword    = errors.New("invalid_password")
	ErrDuplicateUser      = errors.New("usuario_already_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
)
