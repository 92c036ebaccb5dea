package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/application/contact/dto"
	"parksexplorer/internal/domain/contact"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type mockContactRepository struct {
	SaveFunc func(ctx context.Context, c *contact.Contact) error
}

func (m *mockContactRepository) Save(ctx context.Context, c *contact.Contact) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

type mockNotifier struct {
	ConfiguredFunc              func() bool
	SendContactNotificationFunc func(c *contact.Contact) error
}

func (m *mockNotifier) Configured() bool {
	if m.ConfiguredFunc != nil {
		return m.ConfiguredFunc()
	}
	return false
}

func (m *mockNotifier) SendContactNotification(c *contact.Contact) error {
	if m.SendContactNotificationFunc != nil {
		return m.SendContactNotificationFunc(c)
	}
	return nil
}

func validSubmitRequest() dto.SubmitContactRequest {
	return dto.SubmitContactRequest{
		Name:    "Jamie Park",
		Email:   "jamie@example.com",
		Message: "Love the itinerary planner!",
	}
}

func TestSubmitContact_Success(t *testing.T) {
	var saved *contact.Contact
	repo := &mockContactRepository{
		SaveFunc: func(ctx context.Context, c *contact.Contact) error {
			saved = c
			return c.SetID(3)
		},
	}

	uc := NewSubmitContactUseCase(repo, nil, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", validSubmitRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, "Jamie Park", resp.Name)
	assert.Equal(t, "jamie@example.com", resp.Email)
	require.NotNil(t, saved)
	assert.Equal(t, "user-1", saved.UserID())
}

func TestSubmitContact_StripsMarkup(t *testing.T) {
	var saved *contact.Contact
	repo := &mockContactRepository{
		SaveFunc: func(ctx context.Context, c *contact.Contact) error {
			saved = c
			return nil
		},
	}

	req := dto.SubmitContactRequest{
		Name:    `<b>Jamie</b>`,
		Email:   "jamie@example.com",
		Message: `Hello <script>alert("xss")</script> there`,
	}

	uc := NewSubmitContactUseCase(repo, nil, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", req)

	require.NoError(t, err)
	assert.Equal(t, "Jamie", resp.Name)
	assert.NotContains(t, resp.Message, "<script>")
	assert.NotContains(t, saved.Message(), "alert")
	assert.Contains(t, saved.Message(), "Hello")
}

func TestSubmitContact_MarkupOnlyMessageRejected(t *testing.T) {
	req := dto.SubmitContactRequest{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Message: `<script>alert("xss")</script>`,
	}

	uc := NewSubmitContactUseCase(&mockContactRepository{}, nil, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsValidationError(err), "a message that sanitizes to nothing is invalid")
}

func TestSubmitContact_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	notifier := &mockNotifier{
		ConfiguredFunc: func() bool { return true },
		SendContactNotificationFunc: func(c *contact.Contact) error {
			return fmt.Errorf("smtp connect: connection refused")
		},
	}

	uc := NewSubmitContactUseCase(&mockContactRepository{}, notifier, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", validSubmitRequest())

	require.NoError(t, err, "notification is best effort")
	assert.NotNil(t, resp)
}

func TestSubmitContact_UnconfiguredNotifierSkipped(t *testing.T) {
	notifier := &mockNotifier{
		ConfiguredFunc: func() bool { return false },
		SendContactNotificationFunc: func(c *contact.Contact) error {
			t.Fatal("unconfigured notifier must not be invoked")
			return nil
		},
	}

	uc := NewSubmitContactUseCase(&mockContactRepository{}, notifier, logger.NewLogger())
	_, err := uc.Execute(context.Background(), "user-1", validSubmitRequest())
	require.NoError(t, err)
}

func TestSubmitContact_SaveFailure(t *testing.T) {
	repo := &mockContactRepository{
		SaveFunc: func(ctx context.Context, c *contact.Contact) error {
			return fmt.Errorf("connection reset")
		},
	}
	notifier := &mockNotifier{
		ConfiguredFunc: func() bool { return true },
		SendContactNotificationFunc: func(c *contact.Contact) error {
			t.Fatal("notification must not fire for an unsaved message")
			return nil
		},
	}

	uc := NewSubmitContactUseCase(repo, notifier, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", validSubmitRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
}
