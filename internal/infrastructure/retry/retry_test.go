package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errFlaky = errors.New("flaky")

func TestPolicy_Do(t *testing.T) {
	retryFlaky := func(err error) bool { return errors.Is(err, errFlaky) }

	t.Run("success first try", func(t *testing.T) {
		calls := 0
		err := Policy{MaxAttempts: 2, Retryable: retryFlaky}.Do(context.Background(), "op", func(context.Context) error {
			calls++
			return nil
		})
		if err != nil || calls != 1 {
			t.Fatalf("expected one clean call, got calls=%d err=%v", calls, err)
		}
	})

	t.Run("retries transient once then succeeds", func(t *testing.T) {
		calls := 0
		err := Policy{MaxAttempts: 2, BaseDelay: time.Millisecond, Retryable: retryFlaky}.Do(context.Background(), "op", func(context.Context) error {
			calls++
			if calls == 1 {
				return errFlaky
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Fatalf("expected success on second call, got calls=%d err=%v", calls, err)
		}
	})

	t.Run("bounded attempts", func(t *testing.T) {
		calls := 0
		err := Policy{MaxAttempts: 2, BaseDelay: time.Millisecond, Retryable: retryFlaky}.Do(context.Background(), "op", func(context.Context) error {
			calls++
			return errFlaky
		})
		if !errors.Is(err, errFlaky) || calls != 2 {
			t.Fatalf("expected 2 calls and wrapped error, got calls=%d err=%v", calls, err)
		}
	})

	t.Run("non retryable stops", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := Policy{MaxAttempts: 5, Retryable: retryFlaky}.Do(context.Background(), "op", func(context.Context) error {
			calls++
			return boom
		})
		if !errors.Is(err, boom) || calls != 1 {
			t.Fatalf("expected single call, got calls=%d err=%v", calls, err)
		}
	})

	t.Run("context cancelled during backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := Policy{MaxAttempts: 3, BaseDelay: time.Hour, Retryable: retryFlaky}.Do(ctx, "op", func(context.Context) error {
			calls++
			cancel()
			return errFlaky
		})
		if !errors.Is(err, errFlaky) || calls != 1 {
			t.Fatalf("expected stop after cancel, got calls=%d err=%v", calls, err)
		}
	})

	t.Run("zero attempts means one", func(t *testing.T) {
		calls := 0
		_ = Policy{}.Do(context.Background(), "op", func(context.Context) error {
			calls++
			return errFlaky
		})
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})
}
