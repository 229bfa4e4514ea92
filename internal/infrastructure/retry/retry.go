package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Policy holds the parameters for the retry strategy.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Retryable decides whether an error is worth another attempt. Nil retries nothing.
	Retryable func(error) bool
	Logger    *logrus.Entry
}

// Do executes fn with exponential back-off. It stops early when ctx is done or the
// error is not retryable; the last error is returned wrapped with the attempt count.
func (p Policy) Do(ctx context.Context, operationName string, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	delay := p.BaseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts || p.Retryable == nil || !p.Retryable(lastErr) || ctx.Err() != nil {
			break
		}

		if p.Logger != nil {
			p.Logger.Warnf("%s failed (attempt %d/%d): %v, retrying in %v", operationName, attempt, attempts, lastErr, delay)
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s interrupted after %d attempts: %w", operationName, attempt, lastErr)
		case <-timer.C:
		}
		delay *= 2
	}

	return fmt.Errorf("%s failed: %w", operationName, lastErr)
}
