package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/RPSLS_Go/internal/logger"
)

// Cleaner deletes history records older than a number of days
type Cleaner interface {
	Cleanup(ctx context.Context, days int) (int64, error)
}

// CleanupWorker periodically prunes game history past the retention window
type CleanupWorker struct {
	cleaner       Cleaner
	retentionDays int
	interval      time.Duration

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewCleanupWorker creates a new CleanupWorker.
// retentionDays < 1 disables the worker.
func NewCleanupWorker(cleaner Cleaner, retentionDays int, interval time.Duration) *CleanupWorker {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CleanupWorker{
		cleaner:       cleaner,
		retentionDays: retentionDays,
		interval:      interval,
		shutdown:      make(chan struct{}),
	}
}

// Start runs a first cleanup immediately and schedules the following ones
func (w *CleanupWorker) Start() {
	if w.retentionDays < 1 {
		logger.FromContext(context.Background()).Info(LogMsgCleanupDisabled, "retention_days", w.retentionDays)
		return
	}
	w.executeCleanup()
	w.scheduleNext()
}

// scheduleNext arms the timer for the next cleanup pass
func (w *CleanupWorker) scheduleNext() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.interval, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.executeCleanup()
		w.scheduleNext()
	})

	logger.FromContext(context.Background()).Debug(LogMsgCleanupScheduled,
		"next_run_at", time.Now().UTC().Add(w.interval),
		"retention_days", w.retentionDays)
}

// executeCleanup performs one cleanup pass in a tracked goroutine
func (w *CleanupWorker) executeCleanup() {
	// Registered under mu so it cannot race the Wait in Shutdown
	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), CleanupRunTimeout)
		defer cancel()

		log := logger.FromContext(ctx)
		log.Info(LogMsgCleanupStarting, "retention_days", w.retentionDays)

		deleted, err := w.cleaner.Cleanup(ctx, w.retentionDays)
		if err != nil {
			log.Error(LogMsgCleanupFailed, "error", err)
			return
		}

		log.Info(LogMsgCleanupCompleted, "deleted", deleted)
	}()
}

// Shutdown gracefully shuts down the cleanup worker.
// Cancels the pending timer and waits for an in-flight cleanup to complete.
func (w *CleanupWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupShutdown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgCleanupStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgCleanupTimeout)
		return ctx.Err()
	}
}
