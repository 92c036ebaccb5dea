package usecases

import (
	"context"

	"parksexplorer/internal/application/auth/dto"
	"parksexplorer/internal/infrastructure/identity"
	"parksexplorer/internal/shared/logger"
)

type GetProfileUseCase struct {
	identity identity.Client
	logger   logger.Interface
}

func NewGetProfileUseCase(identityClient identity.Client, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		identity: identityClient,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, accessToken string) (*dto.ProfileResponse, error) {
	account, err := uc.identity.GetUser(ctx, accessToken)
	if err != nil {
		uc.logger.Warnw("profile lookup failed", "error", err)
		return nil, err
	}

	return &dto.ProfileResponse{
		User: dto.UserInfo{
			ID:       account.ID,
			Email:    account.Email,
			FullName: account.FullName,
		},
	}, nil
}
