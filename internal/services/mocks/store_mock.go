// filepath: internal/services/mocks/store_mock.go
package mocks

import (
	"context"
	"time"

	"payinfo/internal/models"
	"payinfo/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockPaymentInfoStore is a mock implementation of services.PaymentInfoStore
type MockPaymentInfoStore struct {
	mock.Mock
}

var _ services.PaymentInfoStore = (*MockPaymentInfoStore)(nil)

func (m *MockPaymentInfoStore) GetPaymentInfo(ctx context.Context, referenceID string) (*models.StoredPaymentInfo, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredPaymentInfo), args.Error(1)
}

func (m *MockPaymentInfoStore) InsertPaymentInfo(ctx context.Context, info *models.StoredPaymentInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockPaymentInfoStore) PutPaymentInfo(ctx context.Context, info *models.StoredPaymentInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockPaymentInfoStore) DeletePaymentInfo(ctx context.Context, referenceID string) error {
	args := m.Called(ctx, referenceID)
	return args.Error(0)
}

func (m *MockPaymentInfoStore) CountPaymentInfos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentInfoStore) DeleteExpiredPaymentInfos(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
