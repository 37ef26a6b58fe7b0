package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/swiftbill/invoicing_app/internal/apperrors"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/core/ports/repositories"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// BusinessProfileService manages the singleton business profile document.
type BusinessProfileService struct {
	profileRepo repositories.BusinessProfileRepository
}

func NewBusinessProfileService(profileRepo repositories.BusinessProfileRepository) *BusinessProfileService {
	return &BusinessProfileService{profileRepo: profileRepo}
}

// GetBusinessProfile returns the stored profile. A profile that was never
// saved yields an empty default rather than a not-found error.
func (s *BusinessProfileService) GetBusinessProfile(ctx context.Context) (*domain.BusinessProfile, error) {
	profile, err := s.profileRepo.Get(ctx, domain.BusinessProfileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.BusinessProfile{ID: domain.BusinessProfileID}, nil
		}
		return nil, fmt.Errorf("failed to get business profile: %w", err)
	}
	return profile, nil
}

func (s *BusinessProfileService) UpdateBusinessProfile(ctx context.Context, req dto.UpdateBusinessProfileRequest) (*domain.BusinessProfile, error) {
	profile := req.ToDomainBusinessProfile()
	if err := s.profileRepo.Save(ctx, profile.ID, profile); err != nil {
		return nil, fmt.Errorf("failed to save business profile: %w", err)
	}
	return &profile, nil
}
