package pg

import (
	"context"
	"runtime"
	"sync"
	"time"
)

type syncJob struct {
	itemID string
	size   string
}

type WorkerPool struct {
	ctx        context.Context
	cancel     context.CancelFunc
	numWorkers int

	pauseMu   sync.Mutex
	pauseCond *sync.Cond
	paused    bool
}

// NewWorkerPool - создает пул воркеров, при numWorkers <= 0 их число равно runtime.NumCPU
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	wp := &WorkerPool{
		ctx:        ctx,
		cancel:     cancel,
		numWorkers: numWorkers,
	}

	wp.pauseCond = sync.NewCond(&wp.pauseMu)

	return wp
}

// process - раздает задачи воркерам и возвращается, когда все задачи
// обработаны или пул остановлен
func (wp *WorkerPool) process(jobs []syncJob, handle func(ctx context.Context, job syncJob)) {
	queue := make(chan syncJob, wp.numWorkers)

	var wg sync.WaitGroup
	wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range queue {
				if !wp.waitIfPaused() {
					continue
				}
				handle(wp.ctx, job)
			}
		}()
	}

enqueue:
	for _, job := range jobs {
		select {
		case queue <- job:
		case <-wp.ctx.Done():
			break enqueue
		}
	}

	close(queue)
	wg.Wait()
}

// waitIfPaused - блокирует воркер, пока пул на паузе.
// Возвращает false, если пул остановлен
func (wp *WorkerPool) waitIfPaused() bool {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	for wp.paused && wp.ctx.Err() == nil {
		wp.pauseCond.Wait()
	}

	return wp.ctx.Err() == nil
}

func (wp *WorkerPool) isPaused() bool {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	return wp.paused
}

func (wp *WorkerPool) shutdown() {
	wp.cancel()

	wp.pauseMu.Lock()
	wp.pauseCond.Broadcast()
	wp.pauseMu.Unlock()
}

func (wp *WorkerPool) pausePoolWithTimer(duration time.Duration) {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if wp.paused {
		return
	}

	wp.paused = true

	time.AfterFunc(duration, wp.resumePool)
}

func (wp *WorkerPool) resumePool() {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if !wp.paused {
		return
	}

	wp.paused = false

	wp.pauseCond.Broadcast()
}
