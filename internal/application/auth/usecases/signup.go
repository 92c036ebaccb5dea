package usecases

import (
	"context"

	"parksexplorer/internal/application/auth/dto"
	"parksexplorer/internal/domain/user"
	"parksexplorer/internal/infrastructure/identity"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type SignUpUseCase struct {
	identity identity.Client
	users    user.Repository
	logger   logger.Interface
}

func NewSignUpUseCase(
	identityClient identity.Client,
	users user.Repository,
	logger logger.Interface,
) *SignUpUseCase {
	return &SignUpUseCase{
		identity: identityClient,
		users:    users,
		logger:   logger,
	}
}

func (uc *SignUpUseCase) Execute(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	uc.logger.Infow("executing sign up use case", "email", req.Email)

	session, err := uc.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		uc.logger.Warnw("identity sign up failed", "email", req.Email, "error", err)
		return nil, err
	}

	// Mirror the account locally so itinerary and contact rows have a
	// foreign-key anchor. The identity service owns the credential lifecycle.
	email := session.Account.Email
	if email == "" {
		// Email-confirmation flows omit the email from the session payload.
		email = req.Email
	}
	mirrored, err := user.NewUser(session.Account.ID, email, session.Account.FullName)
	if err != nil {
		uc.logger.Errorw("failed to build user mirror", "error", err)
		return nil, errors.NewInternalError("Failed to record account")
	}

	if err := uc.users.Save(ctx, mirrored); err != nil {
		if !errors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to save user mirror", "user_id", session.Account.ID, "error", err)
			return nil, errors.NewInternalError("Failed to record account")
		}
		uc.logger.Debugw("user mirror already exists", "user_id", session.Account.ID)
	}

	uc.logger.Infow("sign up completed", "user_id", session.Account.ID)
	return &dto.AuthResponse{
		AccessToken: session.AccessToken,
		User: dto.UserInfo{
			ID:       session.Account.ID,
			Email:    req.Email,
			FullName: session.Account.FullName,
		},
	}, nil
}
