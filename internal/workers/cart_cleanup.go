package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
)

// cartCleanupWorker periodically purges account carts that were not touched
// for longer than retention.
type cartCleanupWorker struct {
	cartService service.CartService
	interval    time.Duration
	retention   time.Duration
	logger      *logger.Logger
}

func NewCartCleanupWorker(cartService service.CartService, interval, retention time.Duration, logger *logger.Logger) Worker {
	return &cartCleanupWorker{
		cartService: cartService,
		interval:    interval,
		retention:   retention,
		logger:      logger,
	}
}

func (w *cartCleanupWorker) Run(ctx context.Context) {
	log := w.logger.GetChildLogger()
	log.Info().Dur("interval", w.interval).Dur("retention", w.retention).Msg("cart cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("cart cleanup worker stopped")
			return
		case <-ticker.C:
			deleted, err := w.cartService.PurgeStaleCarts(ctx, w.retention)
			if err != nil {
				log.Err(err).Msg("cart cleanup failed")
				continue
			}
			if deleted > 0 {
				log.Info().Int64("deleted", deleted).Msg("stale cart items purged")
			}
		}
	}
}
