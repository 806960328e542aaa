package services

import (
	"context"

	"coindash/src/utils"
	redis_utils "coindash/src/utils/redis"
)

type SyncServiceI interface {
	SyncPrices(ctx context.Context) (int, error)
}

// SyncService is the worker-side fetch loop body: refresh prices, evaluate
// alerts against the fresh ticks, and publish the ticks for the API
// service's WebSocket stream.
type SyncService struct {
	priceService PriceServiceI
	alertService AlertServiceI
	redis        *redis_utils.RedisHandler
}

func NewSyncService(priceService PriceServiceI, alertService AlertServiceI, redis *redis_utils.RedisHandler) *SyncService {
	return &SyncService{
		priceService: priceService,
		alertService: alertService,
		redis:        redis,
	}
}

// SyncPrices runs one sync tick and returns the number of ticks produced.
func (s *SyncService) SyncPrices(ctx context.Context) (int, error) {
	logger := utils.LoggerFromContext(ctx)

	ticks, err := s.priceService.Refresh(ctx)
	if err != nil {
		return 0, err
	}

	fired, err := s.alertService.Evaluate(ctx, ticks)
	if err != nil {
		// Alert evaluation failing must not lose the synced prices.
		logger.WithError(err).Error("alert evaluation failed")
	} else if len(fired) > 0 {
		logger.WithField("count", len(fired)).Info("alerts fired")
	}

	if s.redis != nil {
		for _, tick := range ticks {
			if err := s.redis.Publish(PriceTicksChannel, tick); err != nil {
				logger.WithError(err).Warn("failed to publish price tick")
				break
			}
		}
	}

	logger.WithField("ticks", len(ticks)).Info("price sync completed")
	return len(ticks), nil
}
