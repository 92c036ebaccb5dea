package usecases

import (
	"context"

	"parksexplorer/internal/application/auth/dto"
	"parksexplorer/internal/domain/user"
	"parksexplorer/internal/infrastructure/identity"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type LoginUseCase struct {
	identity identity.Client
	users    user.Repository
	logger   logger.Interface
}

func NewLoginUseCase(
	identityClient identity.Client,
	users user.Repository,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		identity: identityClient,
		users:    users,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	uc.logger.Infow("executing login use case", "email", req.Email)

	session, err := uc.identity.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		uc.logger.Warnw("login failed", "email", req.Email, "error", err)
		return nil, err
	}

	// Accounts created directly in the identity service have no local mirror
	// yet; backfill it so foreign keys resolve on first login.
	if _, err := uc.users.FindByID(ctx, session.Account.ID); err != nil {
		if err != repository.ErrUserNotFound {
			uc.logger.Errorw("failed to look up user mirror", "user_id", session.Account.ID, "error", err)
			return nil, errors.NewInternalError("Failed to resolve account")
		}
		mirrored, buildErr := user.NewUser(session.Account.ID, session.Account.Email, session.Account.FullName)
		if buildErr != nil {
			uc.logger.Errorw("failed to build user mirror", "error", buildErr)
			return nil, errors.NewInternalError("Failed to resolve account")
		}
		if saveErr := uc.users.Save(ctx, mirrored); saveErr != nil && !errors.IsDuplicateError(saveErr) {
			uc.logger.Errorw("failed to backfill user mirror", "user_id", session.Account.ID, "error", saveErr)
			return nil, errors.NewInternalError("Failed to resolve account")
		}
	}

	uc.logger.Infow("login completed", "user_id", session.Account.ID)
	return &dto.AuthResponse{
		AccessToken: session.AccessToken,
		User: dto.UserInfo{
			ID:       session.Account.ID,
			Email:    session.Account.Email,
			FullName: session.Account.FullName,
		},
	}, nil
}
