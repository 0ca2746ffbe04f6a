// filepath: internal/housekeeping/interfaces.go
package housekeeping

import (
	"context"
	"time"
)

// Store defines the database methods required by the housekeeping service.
// This decouples the housekeeping logic from the concrete database implementation.
type Store interface {
	DeleteExpiredPaymentInfos(ctx context.Context, now time.Time) (int64, error)
}
