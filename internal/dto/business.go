package dto

import "github.com/swiftbill/invoicing_app/internal/core/domain"

// UpdateBusinessProfileRequest replaces the singleton business profile.
type UpdateBusinessProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
	LogoURL string `json:"logoUrl" binding:"omitempty,url"`
}

// BusinessProfileResponse defines the data returned for the business profile.
type BusinessProfileResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// ToDomainBusinessProfile builds the domain profile under the fixed
// singleton ID.
func (r UpdateBusinessProfileRequest) ToDomainBusinessProfile() domain.BusinessProfile {
	return domain.BusinessProfile{
		ID:      domain.BusinessProfileID,
		Name:    r.Name,
		Address: r.Address,
		TaxID:   r.TaxID,
		LogoURL: r.LogoURL,
	}
}

// ToBusinessProfileResponse converts a domain.BusinessProfile to its DTO.
func ToBusinessProfileResponse(p *domain.BusinessProfile) BusinessProfileResponse {
	return BusinessProfileResponse{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		TaxID:   p.TaxID,
		LogoURL: p.LogoURL,
	}
}
