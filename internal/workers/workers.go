package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the workers enabled in cfg. A zero cleanup interval
// disables the cart cleanup worker.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	var ws []Worker

	if cfg.CartCleanupInterval > 0 {
		ws = append(ws, NewCartCleanupWorker(services.CartService, cfg.CartCleanupInterval, cfg.CartRetention, logger))
	}

	return &Workers{workers: ws}
}

// Run starts every worker on its own goroutine and returns immediately.
// Workers stop when ctx is done; use Wait to block until they have.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker := worker
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
