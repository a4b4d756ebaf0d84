package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/acne-analysis/internal/logging"
)

// base carries the shared database handle and the transient-error retry
// policy used by every repository.
type base struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

func newBase(db *gorm.DB, logger *zap.Logger) base {
	return base{
		db:             db,
		logger:         logger,
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// executeWithRetry runs fn, retrying transient failures with exponential
// backoff. Non-transient failures are returned immediately, wrapped with the
// operation and event identifier.
func (b *base) executeWithRetry(ctx context.Context, operation, eventID string, fn func() error) error {
	if b.retryAttempts <= 1 {
		return logging.NewOperationError(operation, eventID, fn())
	}

	backoff := b.initialBackoff
	opLogger := logging.WithOperation(b.logger, operation, eventID)
	var err error
	for attempt := 0; attempt < b.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, eventID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= b.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("store operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == b.retryAttempts-1 {
			opLogger.Error("store operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, eventID, err)
		}

		opLogger.Warn("transient store error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, eventID, err)
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
