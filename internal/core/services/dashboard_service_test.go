package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	portssvc "github.com/swiftbill/invoicing_app/internal/core/ports/services"
	"github.com/swiftbill/invoicing_app/internal/core/services"
)

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewDashboardService(suite.mockRepo)
}

func invoiceWith(status domain.InvoiceStatus, amount int64, paidDate *time.Time) domain.Invoice {
	return domain.Invoice{
		DocumentCore: domain.DocumentCore{
			ID: uuid.NewString(),
			LineItems: []domain.LineItem{
				{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(amount)},
			},
		},
		Status:   status,
		PaidDate: paidDate,
	}
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestGetSummary_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("List", ctx).Return([]domain.Invoice{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, summary.InvoiceCount)
	suite.True(summary.TotalOutstanding.IsZero())
	suite.True(summary.TotalPaidLast30Days.IsZero())
	suite.True(summary.OverdueAmount.IsZero())
	suite.True(summary.DraftAmount.IsZero())
	suite.Empty(summary.StatusCounts)
}

func (suite *DashboardServiceTestSuite) TestGetSummary_AggregatesByStatus() {
	ctx := context.Background()
	recent := time.Now().UTC().AddDate(0, 0, -5)
	old := time.Now().UTC().AddDate(0, 0, -60)

	invoices := []domain.Invoice{
		invoiceWith(domain.InvoiceStatusSent, 1000, nil),
		invoiceWith(domain.InvoiceStatusOverdue, 500, nil),
		invoiceWith(domain.InvoiceStatusDraft, 250, nil),
		invoiceWith(domain.InvoiceStatusPaid, 300, &recent),
		invoiceWith(domain.InvoiceStatusPaid, 900, &old),
		invoiceWith(domain.InvoiceStatusVoid, 9999, nil),
	}

	suite.mockRepo.On("List", ctx).Return(invoices, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(6, summary.InvoiceCount)

	// Outstanding counts sent and overdue; overdue is also tracked on its own.
	suite.True(summary.TotalOutstanding.Equal(decimal.NewFromInt(1500)), "outstanding was %s", summary.TotalOutstanding)
	suite.True(summary.OverdueAmount.Equal(decimal.NewFromInt(500)), "overdue was %s", summary.OverdueAmount)
	suite.True(summary.DraftAmount.Equal(decimal.NewFromInt(250)), "draft was %s", summary.DraftAmount)

	// Only the payment inside the 30-day window counts.
	suite.True(summary.TotalPaidLast30Days.Equal(decimal.NewFromInt(300)), "paid was %s", summary.TotalPaidLast30Days)

	suite.Equal(map[string]int{
		"sent":    1,
		"overdue": 1,
		"draft":   1,
		"paid":    2,
		"void":    1,
	}, summary.StatusCounts)
}

func (suite *DashboardServiceTestSuite) TestGetSummary_PaidWithoutPaidDateIgnored() {
	ctx := context.Background()
	invoices := []domain.Invoice{
		invoiceWith(domain.InvoiceStatusPaid, 700, nil),
	}

	suite.mockRepo.On("List", ctx).Return(invoices, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalPaidLast30Days.IsZero())
	suite.Equal(1, summary.StatusCounts["paid"])
}

func (suite *DashboardServiceTestSuite) TestGetSummary_ListError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("List", ctx).Return(nil, expectedErr).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
