package services

import (
	"context"

	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// ClientSvcFacade combines all client-related service operations.
type ClientSvcFacade interface {
	// CreateClient persists a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// GetClientByID retrieves a specific client.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// UpdateClient replaces an existing client wholesale.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client. Derived documents are not cascaded.
	DeleteClient(ctx context.Context, clientID string) error
}
