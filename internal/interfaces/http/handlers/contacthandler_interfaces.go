package handlers

import (
	"context"

	contactdto "parksexplorer/internal/application/contact/dto"
)

// Service interface for ContactHandler

type contactService interface {
	Submit(ctx context.Context, userID string, req contactdto.SubmitContactRequest) (*contactdto.ContactResponse, error)
}
