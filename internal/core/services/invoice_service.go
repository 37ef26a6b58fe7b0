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

// InvoiceService implements invoice CRUD and status changes on top of the
// entity store. Status values are validated at the HTTP boundary; here any
// member of the closed set may replace any other.
type InvoiceService struct {
	invoiceRepo repositories.InvoiceRepository
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	invoice := req.ToDomainInvoice(uuid.NewString())
	if err := s.invoiceRepo.Create(ctx, invoice.ID, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	exists, err := s.invoiceRepo.Exists(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to check invoice %s: %w", invoiceID, err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	invoice := req.ToDomainInvoice(invoiceID)
	if err := s.invoiceRepo.Save(ctx, invoiceID, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	return &invoice, nil
}

func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if err := s.invoiceRepo.Patch(ctx, invoiceID, map[string]any{"status": status}); err != nil {
		return nil, fmt.Errorf("failed to patch invoice %s status: %w", invoiceID, err)
	}
	invoice, err := s.invoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload invoice %s after status patch: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	deleted, err := s.invoiceRepo.Delete(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
