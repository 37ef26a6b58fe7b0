package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/invoicing_app/internal/apperrors"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/core/ports/repositories"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// invoiceDueDays is how far after the issue date a converted invoice falls due.
const invoiceDueDays = 30

// EstimateService implements estimate CRUD, status changes and conversion
// into invoices.
type EstimateService struct {
	estimateRepo repositories.EstimateRepository
	invoiceRepo  repositories.InvoiceRepository
}

func NewEstimateService(estimateRepo repositories.EstimateRepository, invoiceRepo repositories.InvoiceRepository) *EstimateService {
	return &EstimateService{
		estimateRepo: estimateRepo,
		invoiceRepo:  invoiceRepo,
	}
}

func (s *EstimateService) CreateEstimate(ctx context.Context, req dto.CreateEstimateRequest) (*domain.Estimate, error) {
	estimate := req.ToDomainEstimate(uuid.NewString())
	if err := s.estimateRepo.Create(ctx, estimate.ID, estimate); err != nil {
		return nil, fmt.Errorf("failed to create estimate: %w", err)
	}
	return &estimate, nil
}

func (s *EstimateService) GetEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error) {
	estimate, err := s.estimateRepo.Get(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get estimate %s: %w", estimateID, err)
	}
	return estimate, nil
}

func (s *EstimateService) ListEstimates(ctx context.Context) ([]domain.Estimate, error) {
	estimates, err := s.estimateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	return estimates, nil
}

func (s *EstimateService) UpdateEstimate(ctx context.Context, estimateID string, req dto.UpdateEstimateRequest) (*domain.Estimate, error) {
	exists, err := s.estimateRepo.Exists(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to check estimate %s: %w", estimateID, err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	estimate := req.ToDomainEstimate(estimateID)
	if err := s.estimateRepo.Save(ctx, estimateID, estimate); err != nil {
		return nil, fmt.Errorf("failed to update estimate %s: %w", estimateID, err)
	}
	return &estimate, nil
}

func (s *EstimateService) UpdateEstimateStatus(ctx context.Context, estimateID string, status domain.EstimateStatus) (*domain.Estimate, error) {
	if err := s.estimateRepo.Patch(ctx, estimateID, map[string]any{"status": status}); err != nil {
		return nil, fmt.Errorf("failed to patch estimate %s status: %w", estimateID, err)
	}
	estimate, err := s.estimateRepo.Get(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload estimate %s after status patch: %w", estimateID, err)
	}
	return estimate, nil
}

func (s *EstimateService) DeleteEstimate(ctx context.Context, estimateID string) error {
	deleted, err := s.estimateRepo.Delete(ctx, estimateID)
	if err != nil {
		return fmt.Errorf("failed to delete estimate %s: %w", estimateID, err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

// ConvertToInvoice derives a fresh draft invoice from an existing estimate.
// The document number swaps the first "EST" for "INV"; a number without that
// token is copied unchanged rather than rejected. The invoice create and the
// estimate status patch are two independent writes: a patch failure after a
// successful create leaves the new invoice in place, and repeating the call
// produces another invoice under a fresh ID.
func (s *EstimateService) ConvertToInvoice(ctx context.Context, estimateID string) (*domain.Invoice, error) {
	estimate, err := s.estimateRepo.Get(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load estimate %s for conversion: %w", estimateID, err)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		DocumentCore: domain.DocumentCore{
			ID:             uuid.NewString(),
			DocumentNumber: strings.Replace(estimate.DocumentNumber, "EST", "INV", 1),
			ClientID:       estimate.ClientID,
			IssueDate:      now,
			LineItems:      append([]domain.LineItem(nil), estimate.LineItems...),
			Notes:          estimate.Notes,
			Currency:       estimate.Currency,
		},
		Status:  domain.InvoiceStatusDraft,
		DueDate: now.AddDate(0, 0, invoiceDueDays),
	}

	if err := s.invoiceRepo.Create(ctx, invoice.ID, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice from estimate %s: %w", estimateID, err)
	}

	// Regardless of its prior status, the source estimate is marked accepted.
	if err := s.estimateRepo.Patch(ctx, estimateID, map[string]any{"status": domain.EstimateStatusAccepted}); err != nil {
		return nil, fmt.Errorf("invoice %s created but estimate %s was not marked accepted: %w", invoice.ID, estimateID, err)
	}
	return &invoice, nil
}
