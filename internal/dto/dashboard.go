package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse aggregates invoice grand totals by status for the
// dashboard cards.
type DashboardSummaryResponse struct {
	TotalOutstanding    decimal.Decimal `json:"totalOutstanding"`
	TotalPaidLast30Days decimal.Decimal `json:"totalPaidLast30Days"`
	OverdueAmount       decimal.Decimal `json:"overdueAmount"`
	DraftAmount         decimal.Decimal `json:"draftAmount"`
	InvoiceCount        int             `json:"invoiceCount"`
	StatusCounts        map[string]int  `json:"statusCounts"`
}
