package handlers

import (
	"context"

	authdto "parksexplorer/internal/application/auth/dto"
)

// Service interface for AuthHandler

type authService interface {
	SignUp(ctx context.Context, req authdto.SignUpRequest) (*authdto.AuthResponse, error)
	Login(ctx context.Context, req authdto.LoginRequest) (*authdto.AuthResponse, error)
	Logout(ctx context.Context, accessToken string) error
	GetProfile(ctx context.Context, accessToken string) (*authdto.ProfileResponse, error)
}
