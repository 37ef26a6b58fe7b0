package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
)

func TestInvoiceStatus_Valid(t *testing.T) {
	valid := []domain.InvoiceStatus{
		domain.InvoiceStatusDraft,
		domain.InvoiceStatusSent,
		domain.InvoiceStatusPaid,
		domain.InvoiceStatusOverdue,
		domain.InvoiceStatusVoid,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, domain.InvoiceStatus("").Valid())
	assert.False(t, domain.InvoiceStatus("accepted").Valid(), "estimate status must not pass for invoices")
	assert.False(t, domain.InvoiceStatus("Paid").Valid(), "statuses are case sensitive")
}

func TestEstimateStatus_Valid(t *testing.T) {
	valid := []domain.EstimateStatus{
		domain.EstimateStatusDraft,
		domain.EstimateStatusSent,
		domain.EstimateStatusAccepted,
		domain.EstimateStatusRejected,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, domain.EstimateStatus("").Valid())
	assert.False(t, domain.EstimateStatus("paid").Valid(), "invoice status must not pass for estimates")
}
