package services

import (
	"context"

	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves all invoices.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices.
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice replaces an existing invoice wholesale.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoiceStatus patches only the status field. Any status may
	// replace any other; no transition graph is enforced.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}

// EstimateReaderSvc defines read operations for estimates.
type EstimateReaderSvc interface {
	// GetEstimateByID retrieves a specific estimate.
	GetEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error)

	// ListEstimates retrieves all estimates.
	ListEstimates(ctx context.Context) ([]domain.Estimate, error)
}

// EstimateWriterSvc defines write operations for estimates.
type EstimateWriterSvc interface {
	// CreateEstimate persists a new estimate.
	CreateEstimate(ctx context.Context, req dto.CreateEstimateRequest) (*domain.Estimate, error)

	// UpdateEstimate replaces an existing estimate wholesale.
	UpdateEstimate(ctx context.Context, estimateID string, req dto.UpdateEstimateRequest) (*domain.Estimate, error)

	// UpdateEstimateStatus patches only the status field.
	UpdateEstimateStatus(ctx context.Context, estimateID string, status domain.EstimateStatus) (*domain.Estimate, error)

	// DeleteEstimate removes an estimate. Invoices previously derived from
	// it are untouched.
	DeleteEstimate(ctx context.Context, estimateID string) error
}

// EstimateConverterSvc derives a new invoice from an existing estimate.
type EstimateConverterSvc interface {
	// ConvertToInvoice creates a draft invoice copied from the estimate and
	// marks the estimate accepted. The two writes are independent and the
	// operation is not idempotent: converting twice yields two invoices.
	ConvertToInvoice(ctx context.Context, estimateID string) (*domain.Invoice, error)
}

// EstimateSvcFacade combines all estimate-related service interfaces.
type EstimateSvcFacade interface {
	EstimateReaderSvc
	EstimateWriterSvc
	EstimateConverterSvc
}
