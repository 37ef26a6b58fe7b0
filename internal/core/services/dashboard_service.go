package services

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/core/ports/repositories"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// DashboardService aggregates invoice grand totals for the dashboard cards.
type DashboardService struct {
	invoiceRepo repositories.InvoiceRepository
}

func NewDashboardService(invoiceRepo repositories.InvoiceRepository) *DashboardService {
	return &DashboardService{invoiceRepo: invoiceRepo}
}

// GetSummary walks all invoices once: outstanding is the sum of sent and
// overdue grand totals, paid invoices count toward the 30-day window only
// when their paid date falls inside it.
func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for dashboard summary: %w", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	summary := dto.DashboardSummaryResponse{
		InvoiceCount: len(invoices),
		StatusCounts: make(map[string]int),
	}

	for _, invoice := range invoices {
		total := invoice.GrandTotal()
		summary.StatusCounts[string(invoice.Status)]++

		switch invoice.Status {
		case domain.InvoiceStatusSent:
			summary.TotalOutstanding = summary.TotalOutstanding.Add(total)
		case domain.InvoiceStatusOverdue:
			summary.TotalOutstanding = summary.TotalOutstanding.Add(total)
			summary.OverdueAmount = summary.OverdueAmount.Add(total)
		case domain.InvoiceStatusDraft:
			summary.DraftAmount = summary.DraftAmount.Add(total)
		case domain.InvoiceStatusPaid:
			if invoice.PaidDate != nil && invoice.PaidDate.After(cutoff) {
				summary.TotalPaidLast30Days = summary.TotalPaidLast30Days.Add(total)
			}
		}
	}
	return &summary, nil
}
