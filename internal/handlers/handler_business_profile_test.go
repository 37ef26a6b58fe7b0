package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	portssvc "github.com/swiftbill/invoicing_app/internal/core/ports/services"
	"github.com/swiftbill/invoicing_app/internal/dto"
)

// --- Mock BusinessProfileService ---
type MockBusinessProfileService struct {
	mock.Mock
}

func (m *MockBusinessProfileService) GetBusinessProfile(ctx context.Context) (*domain.BusinessProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileService) UpdateBusinessProfile(ctx context.Context, req dto.UpdateBusinessProfileRequest) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

var _ portssvc.BusinessProfileSvcFacade = (*MockBusinessProfileService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardSummaryResponse), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Test Suite ---
type BusinessProfileHandlerSuite struct {
	suite.Suite
	mockProfileService   *MockBusinessProfileService
	mockDashboardService *MockDashboardService
}

func (suite *BusinessProfileHandlerSuite) SetupTest() {
	suite.mockProfileService = new(MockBusinessProfileService)
	suite.mockDashboardService = new(MockDashboardService)
}

func (suite *BusinessProfileHandlerSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	router := newTestRouter(&portssvc.ServiceContainer{
		BusinessProfile: suite.mockProfileService,
		Dashboard:       suite.mockDashboardService,
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// --- Test Cases ---

func (suite *BusinessProfileHandlerSuite) TestGetBusinessProfile_Success() {
	profile := &domain.BusinessProfile{ID: domain.BusinessProfileID, Name: "SwiftBill Studio"}

	suite.mockProfileService.On("GetBusinessProfile", mock.Anything).Return(profile, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/business-profile", nil)
	rr := suite.serve(req)

	suite.Equal(http.StatusOK, rr.Code)

	var resp dto.BusinessProfileResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(domain.BusinessProfileID, resp.ID)
	suite.Equal("SwiftBill Studio", resp.Name)
}

func (suite *BusinessProfileHandlerSuite) TestUpdateBusinessProfile_Success() {
	profile := &domain.BusinessProfile{ID: domain.BusinessProfileID, Name: "SwiftBill Studio", TaxID: "GB123456789"}

	suite.mockProfileService.On("UpdateBusinessProfile", mock.Anything, mock.MatchedBy(func(req dto.UpdateBusinessProfileRequest) bool {
		return req.Name == "SwiftBill Studio" && req.TaxID == "GB123456789"
	})).Return(profile, nil).Once()

	body := `{"name": "SwiftBill Studio", "taxId": "GB123456789"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/business-profile", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := suite.serve(req)

	suite.Equal(http.StatusOK, rr.Code)
	suite.mockProfileService.AssertExpectations(suite.T())
}

func (suite *BusinessProfileHandlerSuite) TestUpdateBusinessProfile_MissingName() {
	body := `{"taxId": "GB123456789"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/business-profile", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := suite.serve(req)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "UpdateBusinessProfile", mock.Anything, mock.Anything)
}

func (suite *BusinessProfileHandlerSuite) TestUpdateBusinessProfile_BadLogoURL() {
	body := `{"name": "SwiftBill Studio", "logoUrl": "not a url"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/business-profile", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := suite.serve(req)

	suite.Equal(http.StatusBadRequest, rr.Code)
}

func (suite *BusinessProfileHandlerSuite) TestGetDashboardSummary_Success() {
	summary := &dto.DashboardSummaryResponse{
		TotalOutstanding: decimal.NewFromInt(1500),
		InvoiceCount:     4,
		StatusCounts:     map[string]int{"sent": 2, "draft": 2},
	}

	suite.mockDashboardService.On("GetSummary", mock.Anything).Return(summary, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	rr := suite.serve(req)

	suite.Equal(http.StatusOK, rr.Code)

	var resp dto.DashboardSummaryResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(4, resp.InvoiceCount)
	suite.True(resp.TotalOutstanding.Equal(decimal.NewFromInt(1500)))
}

func TestBusinessProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(BusinessProfileHandlerSuite))
}
