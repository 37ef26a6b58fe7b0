package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
)

// LineItemRequest is one billable row in a document request. TaxRate and
// Discount are percentages in [0,100]; omitted means not applied.
type LineItemRequest struct {
	ID          string           `json:"id"`
	Description string           `json:"description" binding:"required"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"gte=0"`
	UnitPrice   decimal.Decimal  `json:"unitPrice" binding:"gte=0"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty" binding:"omitempty,gte=0,lte=100"`
	Discount    *decimal.Decimal `json:"discount,omitempty" binding:"omitempty,gte=0,lte=100"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
type CreateInvoiceRequest struct {
	DocumentNumber string            `json:"documentNumber" binding:"required"`
	ClientID       string            `json:"clientId" binding:"required"`
	IssueDate      time.Time         `json:"issueDate" binding:"required"`
	DueDate        time.Time         `json:"dueDate" binding:"required"`
	Status         string            `json:"status" binding:"required,oneof=draft sent paid overdue void"`
	LineItems      []LineItemRequest `json:"lineItems" binding:"dive"`
	Notes          string            `json:"notes"`
	Currency       string            `json:"currency" binding:"required,iso4217"`
	PaidDate       *time.Time        `json:"paidDate,omitempty"`
}

// UpdateInvoiceRequest carries a full replacement; it shares the create schema.
type UpdateInvoiceRequest = CreateInvoiceRequest

// CreateEstimateRequest defines the data needed to create an estimate.
type CreateEstimateRequest struct {
	DocumentNumber string            `json:"documentNumber" binding:"required"`
	ClientID       string            `json:"clientId" binding:"required"`
	IssueDate      time.Time         `json:"issueDate" binding:"required"`
	ExpiryDate     time.Time         `json:"expiryDate" binding:"required"`
	Status         string            `json:"status" binding:"required,oneof=draft sent accepted rejected"`
	LineItems      []LineItemRequest `json:"lineItems" binding:"dive"`
	Notes          string            `json:"notes"`
	Currency       string            `json:"currency" binding:"required,iso4217"`
}

// UpdateEstimateRequest carries a full replacement; it shares the create schema.
type UpdateEstimateRequest = CreateEstimateRequest

// UpdateInvoiceStatusRequest patches only the status of an invoice.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent paid overdue void"`
}

// UpdateEstimateStatusRequest patches only the status of an estimate.
type UpdateEstimateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent accepted rejected"`
}

// TotalsResponse carries the computed aggregate amounts of a document.
type TotalsResponse struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
}

// InvoiceResponse defines the data returned for an invoice, including its
// computed totals.
type InvoiceResponse struct {
	ID             string            `json:"id"`
	DocumentNumber string            `json:"documentNumber"`
	ClientID       string            `json:"clientId"`
	IssueDate      time.Time         `json:"issueDate"`
	DueDate        time.Time         `json:"dueDate"`
	Status         string            `json:"status"`
	LineItems      []domain.LineItem `json:"lineItems"`
	Notes          string            `json:"notes,omitempty"`
	Currency       string            `json:"currency"`
	PaidDate       *time.Time        `json:"paidDate,omitempty"`
	Totals         TotalsResponse    `json:"totals"`
}

// EstimateResponse defines the data returned for an estimate, including its
// computed totals.
type EstimateResponse struct {
	ID             string            `json:"id"`
	DocumentNumber string            `json:"documentNumber"`
	ClientID       string            `json:"clientId"`
	IssueDate      time.Time         `json:"issueDate"`
	ExpiryDate     time.Time         `json:"expiryDate"`
	Status         string            `json:"status"`
	LineItems      []domain.LineItem `json:"lineItems"`
	Notes          string            `json:"notes,omitempty"`
	Currency       string            `json:"currency"`
	Totals         TotalsResponse    `json:"totals"`
}

// ToDomainLineItems converts request line items, assigning IDs where the
// editor did not provide one.
func ToDomainLineItems(items []LineItemRequest) []domain.LineItem {
	result := make([]domain.LineItem, len(items))
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		result[i] = domain.LineItem{
			ID:          id,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Discount:    item.Discount,
		}
	}
	return result
}

// ToDomainInvoice builds a domain invoice from the request with the given ID.
func (r CreateInvoiceRequest) ToDomainInvoice(id string) domain.Invoice {
	return domain.Invoice{
		DocumentCore: domain.DocumentCore{
			ID:             id,
			DocumentNumber: r.DocumentNumber,
			ClientID:       r.ClientID,
			IssueDate:      r.IssueDate,
			LineItems:      ToDomainLineItems(r.LineItems),
			Notes:          r.Notes,
			Currency:       r.Currency,
		},
		Status:   domain.InvoiceStatus(r.Status),
		DueDate:  r.DueDate,
		PaidDate: r.PaidDate,
	}
}

// ToDomainEstimate builds a domain estimate from the request with the given ID.
func (r CreateEstimateRequest) ToDomainEstimate(id string) domain.Estimate {
	return domain.Estimate{
		DocumentCore: domain.DocumentCore{
			ID:             id,
			DocumentNumber: r.DocumentNumber,
			ClientID:       r.ClientID,
			IssueDate:      r.IssueDate,
			LineItems:      ToDomainLineItems(r.LineItems),
			Notes:          r.Notes,
			Currency:       r.Currency,
		},
		Status:     domain.EstimateStatus(r.Status),
		ExpiryDate: r.ExpiryDate,
	}
}

func toTotalsResponse(t domain.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:      t.Subtotal,
		TotalDiscount: t.TotalDiscount,
		TotalTax:      t.TotalTax,
		GrandTotal:    t.GrandTotal,
	}
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.ID,
		DocumentNumber: inv.DocumentNumber,
		ClientID:       inv.ClientID,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		Status:         string(inv.Status),
		LineItems:      inv.LineItems,
		Notes:          inv.Notes,
		Currency:       inv.Currency,
		PaidDate:       inv.PaidDate,
		Totals:         toTotalsResponse(inv.Totals()),
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}

// ToEstimateResponse converts a domain.Estimate to an EstimateResponse DTO.
func ToEstimateResponse(est *domain.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             est.ID,
		DocumentNumber: est.DocumentNumber,
		ClientID:       est.ClientID,
		IssueDate:      est.IssueDate,
		ExpiryDate:     est.ExpiryDate,
		Status:         string(est.Status),
		LineItems:      est.LineItems,
		Notes:          est.Notes,
		Currency:       est.Currency,
		Totals:         toTotalsResponse(est.Totals()),
	}
}

// ToListEstimateResponse converts a slice of domain.Estimate to response DTOs.
func ToListEstimateResponse(estimates []domain.Estimate) []EstimateResponse {
	res := make([]EstimateResponse, len(estimates))
	for i, est := range estimates {
		res[i] = ToEstimateResponse(&est)
	}
	return res
}
