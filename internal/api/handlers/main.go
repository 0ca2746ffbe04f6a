// filepath: internal/api/handlers/main.go
package handlers

import (
	"payinfo/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	Info         services.InfoService
	PaymentInfo  services.PaymentInfoService
	Housekeeping services.HousekeepingService
	Auditor      services.Auditor
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	paymentInfo services.PaymentInfoService,
	housekeeping services.HousekeepingService,
	auditor services.Auditor,
) *Handlers {
	return &Handlers{
		Info:         info,
		PaymentInfo:  paymentInfo,
		Housekeeping: housekeeping,
		Auditor:      auditor,
	}
}
