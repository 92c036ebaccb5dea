// Package contact handles contact-form submissions: sanitization, storage
// and best-effort owner notification.
package contact

import (
	"context"

	"parksexplorer/internal/application/contact/dto"
	"parksexplorer/internal/application/contact/usecases"
	domaincontact "parksexplorer/internal/domain/contact"
	"parksexplorer/internal/shared/logger"
)

type Service struct {
	logger logger.Interface

	submit *usecases.SubmitContactUseCase
}

func NewService(
	repo domaincontact.Repository,
	notifier usecases.Notifier,
	logger logger.Interface,
) *Service {
	return &Service{
		logger: logger,

		submit: usecases.NewSubmitContactUseCase(repo, notifier, logger),
	}
}

func (s *Service) Submit(ctx context.Context, userID string, req dto.SubmitContactRequest) (*dto.ContactResponse, error) {
	return s.submit.Execute(ctx, userID, req)
}
