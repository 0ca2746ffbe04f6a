// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"time"

	"payinfo/internal/models"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "payment_info.store")
	// actor: who did it (token subject)
	// resource: what was affected (e.g., "payment_info:01HF...")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo(ctx context.Context) models.Info
}

// PaymentInfoService defines the interface for the payment info service.
type PaymentInfoService interface {
	GetPaymentInfo(ctx context.Context, referenceID string) (*models.StoredPaymentInfo, error)
	CreatePaymentInfo(ctx context.Context, info models.PaymentInfo) (*models.StoredPaymentInfo, error)
	StorePaymentInfo(ctx context.Context, info models.PaymentInfo) (*models.StoredPaymentInfo, error)
	DeletePaymentInfo(ctx context.Context, referenceID string) error
}

// HousekeepingService defines the interface for the housekeeping service.
type HousekeepingService interface {
	Start()
	Stop()
	Trigger(ctx context.Context) (*models.HousekeepingReport, error)
}

// PaymentInfoStore is the subset of the repository used by the services.
type PaymentInfoStore interface {
	GetPaymentInfo(ctx context.Context, referenceID string) (*models.StoredPaymentInfo, error)
	InsertPaymentInfo(ctx context.Context, info *models.StoredPaymentInfo) error
	PutPaymentInfo(ctx context.Context, info *models.StoredPaymentInfo) error
	DeletePaymentInfo(ctx context.Context, referenceID string) error
	CountPaymentInfos(ctx context.Context) (int64, error)
	DeleteExpiredPaymentInfos(ctx context.Context, now time.Time) (int64, error)
}
