// filepath: internal/services/payment_info_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"payinfo/internal/logging"
	"payinfo/internal/models"
	"payinfo/internal/repository"

	"github.com/oklog/ulid/v2"
)

var _ PaymentInfoService = (*paymentInfoService)(nil)

type paymentInfoService struct {
	store     PaymentInfoStore
	retention time.Duration
	now       func() time.Time
}

// NewPaymentInfoService creates a new PaymentInfoService. A zero retention keeps records forever.
func NewPaymentInfoService(store PaymentInfoStore, retention time.Duration) *paymentInfoService {
	return &paymentInfoService{
		store:     store,
		retention: retention,
		now:       time.Now,
	}
}

// GetPaymentInfo returns the stored document for referenceID, or ErrNotFound.
func (s *paymentInfoService) GetPaymentInfo(ctx context.Context, referenceID string) (*models.StoredPaymentInfo, error) {
	info, err := s.store.GetPaymentInfo(ctx, referenceID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentInfoNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load payment info '%s': %w", referenceID, err)
	}
	return info, nil
}

// CreatePaymentInfo validates info and stores it as a new record.
// It returns ErrConflict when a live record already uses the reference id.
func (s *paymentInfoService) CreatePaymentInfo(ctx context.Context, info models.PaymentInfo) (*models.StoredPaymentInfo, error) {
	stored, err := s.prepare(info)
	if err != nil {
		return nil, err
	}
	if err := s.store.InsertPaymentInfo(ctx, stored); err != nil {
		if errors.Is(err, repository.ErrPaymentInfoExists) {
			return nil, fmt.Errorf("%w: payment info '%s' already exists", ErrConflict, stored.ReferenceID)
		}
		return nil, fmt.Errorf("failed to store payment info '%s': %w", stored.ReferenceID, err)
	}
	return stored, nil
}

// StorePaymentInfo validates info and upserts it.
func (s *paymentInfoService) StorePaymentInfo(ctx context.Context, info models.PaymentInfo) (*models.StoredPaymentInfo, error) {
	stored, err := s.prepare(info)
	if err != nil {
		return nil, err
	}
	if err := s.store.PutPaymentInfo(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to store payment info '%s': %w", stored.ReferenceID, err)
	}
	return stored, nil
}

// prepare validates info and builds the record to persist. An empty reference id gets a fresh ULID.
func (s *paymentInfoService) prepare(info models.PaymentInfo) (*models.StoredPaymentInfo, error) {
	if info.ReferenceID == "" {
		info.ReferenceID = ulid.Make().String()
		logging.Log.Debugf("prepare: assigned reference id '%s'", info.ReferenceID)
	}

	if err := ValidatePaymentInfo(info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	doc, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment info: %w", err)
	}

	now := s.now().UTC()
	stored := &models.StoredPaymentInfo{
		ReferenceID: info.ReferenceID,
		Document:    doc,
		CreatedAt:   now,
	}
	if s.retention > 0 {
		expiresAt := now.Add(s.retention)
		stored.ExpiresAt = &expiresAt
	}
	return stored, nil
}

// DeletePaymentInfo removes the record for referenceID, or returns ErrNotFound.
func (s *paymentInfoService) DeletePaymentInfo(ctx context.Context, referenceID string) error {
	if err := s.store.DeletePaymentInfo(ctx, referenceID); err != nil {
		if errors.Is(err, repository.ErrPaymentInfoNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete payment info '%s': %w", referenceID, err)
	}
	return nil
}
