package pg

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/retryablehttp"
)

const syncShutdownTimeout = 4 * time.Second

// QuantitySource - источник актуальных остатков (сервис склада)
type QuantitySource interface {
	Quantity(ctx context.Context, itemID, size string) (int, error)
}

// QuantitySink - хранилище, в которое записываются полученные остатки
type QuantitySink interface {
	SetStock(ctx context.Context, itemID, size string, quantity int) error
}

// RunInventorySync - раз в interval обновляет остатки по всем строкам inventory.
// Строки берутся из Postgres, значения пишутся в sink (nil - в саму таблицу).
// Ответ 429 от source приостанавливает воркеры на Retry-After.
func (r *Repository) RunInventorySync(source QuantitySource, sink QuantitySink, interval time.Duration, numWorkers int) {
	if sink == nil {
		sink = r
	}

	r.syncMu.Lock()
	defer r.syncMu.Unlock()

	if r.stopSync != nil {
		return
	}

	r.stopSync = make(chan struct{})
	r.syncDone = make(chan struct{})
	r.workerPool = NewWorkerPool(numWorkers)

	stop, done, pool := r.stopSync, r.syncDone, r.workerPool
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.syncInventory(pool, source, sink)
			case <-stop:
				return
			}
		}
	}()
}

// StopInventorySync - останавливает синхронизацию и ждет завершения воркеров
func (r *Repository) StopInventorySync() {
	r.syncMu.Lock()
	defer r.syncMu.Unlock()

	if r.stopSync == nil {
		return
	}

	close(r.stopSync)
	r.stopSync = nil
	r.workerPool.shutdown()

	select {
	case <-r.syncDone:
		r.lg.Info("inventory sync stopped")
	case <-time.After(syncShutdownTimeout):
		r.lg.Warn("inventory sync did not stop in time")
	}
}

func (r *Repository) syncInventory(pool *WorkerPool, source QuantitySource, sink QuantitySink) {
	rows, err := r.listInventory(pool.ctx)
	if err != nil {
		r.lg.Errorf("listing inventory error: %v", err)
		return
	}

	pool.process(rows, func(ctx context.Context, job syncJob) {
		r.syncItem(ctx, pool, source, sink, job)
	})
}

// syncItem - получает остаток одной позиции и записывает его в sink
func (r *Repository) syncItem(ctx context.Context, pool *WorkerPool, source QuantitySource, sink QuantitySink, job syncJob) {
	quantity, err := source.Quantity(ctx, job.itemID, job.size)

	var statusErr *retryablehttp.StatusError
	switch {
	case err == nil:
	case errors.Is(err, model.ErrItemNotFound):
		quantity = 0
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests:
		pool.pausePoolWithTimer(statusErr.RetryAfter)
		r.lg.Warnf("inventory source rate limited, pausing for %s", statusErr.RetryAfter)
		return
	default:
		r.lg.Errorf("getting stock for %s/%s error: %v", job.itemID, job.size, err)
		return
	}

	if err := sink.SetStock(ctx, job.itemID, job.size, quantity); err != nil {
		r.lg.Errorf("updating stock for %s/%s error: %v", job.itemID, job.size, err)
	}
}
