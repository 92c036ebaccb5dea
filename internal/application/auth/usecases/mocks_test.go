package usecases

import (
	"context"

	"parksexplorer/internal/domain/user"
	"parksexplorer/internal/infrastructure/identity"
	"parksexplorer/internal/shared/logger"
)

type mockIdentityClient struct {
	SignUpFunc             func(ctx context.Context, email, password string) (*identity.Session, error)
	SignInWithPasswordFunc func(ctx context.Context, email, password string) (*identity.Session, error)
	SignOutFunc            func(ctx context.Context, accessToken string) error
	GetUserFunc            func(ctx context.Context, accessToken string) (*identity.Account, error)
}

func (m *mockIdentityClient) SignUp(ctx context.Context, email, password string) (*identity.Session, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	return nil, nil
}

func (m *mockIdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error) {
	if m.SignInWithPasswordFunc != nil {
		return m.SignInWithPasswordFunc(ctx, email, password)
	}
	return nil, nil
}

func (m *mockIdentityClient) SignOut(ctx context.Context, accessToken string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, accessToken)
	}
	return nil
}

func (m *mockIdentityClient) GetUser(ctx context.Context, accessToken string) (*identity.Account, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, accessToken)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc     func(ctx context.Context, u *user.User) error
	FindByIDFunc func(ctx context.Context, id string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
