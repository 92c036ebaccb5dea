// Package auth orchestrates account operations against the external identity
// service. No credentials are stored locally; accounts are mirrored into the
// database only to anchor foreign keys.
package auth

import (
	"context"

	"parksexplorer/internal/application/auth/dto"
	"parksexplorer/internal/application/auth/usecases"
	"parksexplorer/internal/domain/user"
	"parksexplorer/internal/infrastructure/identity"
	"parksexplorer/internal/shared/logger"
)

type Service struct {
	logger logger.Interface

	signUp     *usecases.SignUpUseCase
	login      *usecases.LoginUseCase
	logout     *usecases.LogoutUseCase
	getProfile *usecases.GetProfileUseCase
}

func NewService(
	identityClient identity.Client,
	users user.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		logger: logger,

		signUp:     usecases.NewSignUpUseCase(identityClient, users, logger),
		login:      usecases.NewLoginUseCase(identityClient, users, logger),
		logout:     usecases.NewLogoutUseCase(identityClient, logger),
		getProfile: usecases.NewGetProfileUseCase(identityClient, logger),
	}
}

func (s *Service) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	return s.signUp.Execute(ctx, req)
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.login.Execute(ctx, req)
}

func (s *Service) Logout(ctx context.Context, accessToken string) error {
	return s.logout.Execute(ctx, accessToken)
}

func (s *Service) GetProfile(ctx context.Context, accessToken string) (*dto.ProfileResponse, error) {
	return s.getProfile.Execute(ctx, accessToken)
}
