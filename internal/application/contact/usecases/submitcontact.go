package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"parksexplorer/internal/application/contact/dto"
	"parksexplorer/internal/domain/contact"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

// Notifier forwards a stored contact message to the site owner.
type Notifier interface {
	Configured() bool
	SendContactNotification(c *contact.Contact) error
}

type SubmitContactUseCase struct {
	repo      contact.Repository
	notifier  Notifier
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

func NewSubmitContactUseCase(
	repo contact.Repository,
	notifier Notifier,
	logger logger.Interface,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		repo:      repo,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, userID string, req dto.SubmitContactRequest) (*dto.ContactResponse, error) {
	uc.logger.Infow("executing submit contact use case", "user_id", userID)

	name := strings.TrimSpace(uc.sanitizer.Sanitize(req.Name))
	message := strings.TrimSpace(uc.sanitizer.Sanitize(req.Message))

	c, err := contact.NewContact(userID, name, req.Email, message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save contact message", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	// Notification is best effort; the submission is already stored.
	if uc.notifier != nil && uc.notifier.Configured() {
		if err := uc.notifier.SendContactNotification(c); err != nil {
			uc.logger.Warnw("failed to send contact notification", "contact_id", c.ID(), "error", err)
		}
	}

	uc.logger.Infow("contact message stored", "contact_id", c.ID(), "user_id", userID)
	return &dto.ContactResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Message:   c.Message(),
		CreatedAt: c.CreatedAt(),
	}, nil
}
