package usecases

import (
	"context"

	"parksexplorer/internal/infrastructure/identity"
	"parksexplorer/internal/shared/logger"
)

type LogoutUseCase struct {
	identity identity.Client
	logger   logger.Interface
}

func NewLogoutUseCase(identityClient identity.Client, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		identity: identityClient,
		logger:   logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, accessToken string) error {
	if err := uc.identity.SignOut(ctx, accessToken); err != nil {
		uc.logger.Warnw("logout failed", "error", err)
		return err
	}
	return nil
}
