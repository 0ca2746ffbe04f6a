// filepath: internal/services/mocks/payment_info_mock.go
package mocks

import (
	"context"

	"payinfo/internal/models"
	"payinfo/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockPaymentInfoService is a mock implementation of services.PaymentInfoService
type MockPaymentInfoService struct {
	mock.Mock
}

var _ services.PaymentInfoService = (*MockPaymentInfoService)(nil)

func (m *MockPaymentInfoService) GetPaymentInfo(ctx context.Context, referenceID string) (*models.StoredPaymentInfo, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredPaymentInfo), args.Error(1)
}

func (m *MockPaymentInfoService) CreatePaymentInfo(ctx context.Context, info models.PaymentInfo) (*models.StoredPaymentInfo, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredPaymentInfo), args.Error(1)
}

func (m *MockPaymentInfoService) StorePaymentInfo(ctx context.Context, info models.PaymentInfo) (*models.StoredPaymentInfo, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredPaymentInfo), args.Error(1)
}

func (m *MockPaymentInfoService) DeletePaymentInfo(ctx context.Context, referenceID string) error {
	args := m.Called(ctx, referenceID)
	return args.Error(0)
}
