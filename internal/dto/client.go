package dto

import "github.com/swiftbill/invoicing_app/internal/core/domain"

// CreateClientRequest defines the data needed to create a new client.
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CompanyName string `json:"companyName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// UpdateClientRequest carries a full replacement of a client; it shares the
// create schema.
type UpdateClientRequest = CreateClientRequest

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// ToDomainClient builds a domain client from the request with the given ID.
func (r CreateClientRequest) ToDomainClient(id string) domain.Client {
	return domain.Client{
		ID:          id,
		Name:        r.Name,
		Email:       r.Email,
		CompanyName: r.CompanyName,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}

// ToClientResponse converts a domain.Client to a ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		Phone:       c.Phone,
		Address:     c.Address,
	}
}

// ToListClientResponse converts a slice of domain.Client to response DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return res
}
