package services

import (
	"context"

	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// BusinessProfileSvcFacade manages the singleton business profile.
type BusinessProfileSvcFacade interface {
	// GetBusinessProfile returns the stored profile, or an empty default
	// when none has been saved yet.
	GetBusinessProfile(ctx context.Context) (*domain.BusinessProfile, error)

	// UpdateBusinessProfile upserts the profile.
	UpdateBusinessProfile(ctx context.Context, req dto.UpdateBusinessProfileRequest) (*domain.BusinessProfile, error)
}

// DashboardSvcFacade produces the aggregate figures for the dashboard.
type DashboardSvcFacade interface {
	// GetSummary computes grand-total aggregates across all invoices.
	GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}
