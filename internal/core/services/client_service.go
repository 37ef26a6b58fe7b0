package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/swiftbill/invoicing_app/internal/apperrors"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/core/ports/repositories"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// ClientService implements client CRUD on top of the entity store.
type ClientService struct {
	clientRepo repositories.ClientRepository
}

func NewClientService(clientRepo repositories.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client := req.ToDomainClient(uuid.NewString())
	if err := s.clientRepo.Create(ctx, client.ID, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client %s: %w", clientID, err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	client := req.ToDomainClient(clientID)
	if err := s.clientRepo.Save(ctx, clientID, client); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}
	return &client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, clientID string) error {
	deleted, err := s.clientRepo.Delete(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
