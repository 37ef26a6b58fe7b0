package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus defines the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

// Valid reports whether s is one of the closed set of invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusVoid:
		return true
	}
	return false
}

// EstimateStatus defines the lifecycle state of an estimate.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// Valid reports whether s is one of the closed set of estimate statuses.
func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusAccepted, EstimateStatusRejected:
		return true
	}
	return false
}

// LineItem is one billable row on a document. TaxRate and Discount are
// percentages (e.g. 5 for 5%); nil means not applied.
type LineItem struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

// DocumentCore holds the fields shared by invoices and estimates.
type DocumentCore struct {
	ID             string     `json:"id"`
	DocumentNumber string     `json:"documentNumber"`
	ClientID       string     `json:"clientId"`
	IssueDate      time.Time  `json:"issueDate"`
	LineItems      []LineItem `json:"lineItems"`
	Notes          string     `json:"notes,omitempty"`
	Currency       string     `json:"currency"`
}

// Invoice is a billable document with a due date.
type Invoice struct {
	DocumentCore
	Status   InvoiceStatus `json:"status"`
	DueDate  time.Time     `json:"dueDate"`
	PaidDate *time.Time    `json:"paidDate,omitempty"`
}

// Estimate is a proposed document that may later be converted into an
// invoice. It expires instead of falling due.
type Estimate struct {
	DocumentCore
	Status     EstimateStatus `json:"status"`
	ExpiryDate time.Time      `json:"expiryDate"`
}
