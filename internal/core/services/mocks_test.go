package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/core/ports/repositories"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) Get(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, id string, entity domain.Client) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockClientRepository) Save(ctx context.Context, id string, entity domain.Client) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockClientRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ repositories.ClientRepository = (*MockClientRepository)(nil)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, id string, entity domain.Invoice) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, id string, entity domain.Invoice) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ repositories.InvoiceRepository = (*MockInvoiceRepository)(nil)

// --- Mock EstimateRepository ---
type MockEstimateRepository struct {
	mock.Mock
}

func (m *MockEstimateRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEstimateRepository) Get(ctx context.Context, id string) (*domain.Estimate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Estimate), args.Error(1)
}

func (m *MockEstimateRepository) List(ctx context.Context) ([]domain.Estimate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Estimate), args.Error(1)
}

func (m *MockEstimateRepository) Create(ctx context.Context, id string, entity domain.Estimate) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockEstimateRepository) Save(ctx context.Context, id string, entity domain.Estimate) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockEstimateRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockEstimateRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ repositories.EstimateRepository = (*MockEstimateRepository)(nil)

// --- Mock BusinessProfileRepository ---
type MockBusinessProfileRepository struct {
	mock.Mock
}

func (m *MockBusinessProfileRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBusinessProfileRepository) Get(ctx context.Context, id string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepository) List(ctx context.Context) ([]domain.BusinessProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepository) Create(ctx context.Context, id string, entity domain.BusinessProfile) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockBusinessProfileRepository) Save(ctx context.Context, id string, entity domain.BusinessProfile) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockBusinessProfileRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockBusinessProfileRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ repositories.BusinessProfileRepository = (*MockBusinessProfileRepository)(nil)
