// filepath: internal/services/info_service.go
package services

import (
	"context"
	"time"

	"payinfo/internal/logging"
	"payinfo/internal/models"
)

// ServiceName is reported by the info endpoint.
const ServiceName = "payinfo"

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version   string
	StartTime time.Time
	store     PaymentInfoStore
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, store PaymentInfoStore) *infoService {
	return &infoService{
		Version:   version,
		StartTime: startTime,
		store:     store,
	}
}

// GetInfo retrieves the application information.
// A failing count is logged and reported as zero.
func (s *infoService) GetInfo(ctx context.Context) models.Info {
	count, err := s.store.CountPaymentInfos(ctx)
	if err != nil {
		logging.Log.Warnf("GetInfo: failed to count payment infos: %v", err)
	}
	return models.Info{
		ServiceName:  ServiceName,
		Version:      s.Version,
		UptimeSince:  s.StartTime,
		PaymentInfos: count,
	}
}
