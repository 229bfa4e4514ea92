package usecase

import (
	"context"
	"errors"
	"testing"

	"wetrade/internal/domain/entities"
)

func TestValuationTracker_Lifecycle(t *testing.T) {
	tr := NewValuationTracker(10)

	ctx, id := tr.Begin(context.Background(), "s1")
	h, ok := tr.Get(id)
	if !ok || h.State != entities.ValuationStatePending || h.SessionID != "s1" {
		t.Fatalf("unexpected pending handle: %+v", h)
	}

	tr.Complete(id, entities.ValuationResult{EstimatedMarketValue: 10})
	h, _ = tr.Get(id)
	if h.State != entities.ValuationStateCompleted || h.Result == nil || h.Result.EstimatedMarketValue != 10 {
		t.Fatalf("unexpected completed handle: %+v", h)
	}
	if ctx.Err() == nil {
		t.Fatalf("finished request context should be released")
	}

	tr.Fail(id, ErrTimeout)
	h, _ = tr.Get(id)
	if h.State != entities.ValuationStateCompleted {
		t.Fatalf("terminal state must not change, got %s", h.State)
	}
}

func TestValuationTracker_SupersedesSameSession(t *testing.T) {
	tr := NewValuationTracker(10)

	firstCtx, first := tr.Begin(context.Background(), "s1")
	otherCtx, other := tr.Begin(context.Background(), "s2")
	_, second := tr.Begin(context.Background(), "s1")

	if !errors.Is(context.Cause(firstCtx), ErrCancelled) {
		t.Fatalf("expected first request cancelled, cause=%v", context.Cause(firstCtx))
	}
	if otherCtx.Err() != nil {
		t.Fatalf("other session must not be affected")
	}

	h, _ := tr.Get(first)
	if h.State != entities.ValuationStateCancelled || h.Reason != "cancelled" {
		t.Fatalf("unexpected first handle: %+v", h)
	}

	tr.Complete(first, entities.ValuationResult{})
	if h, _ := tr.Get(first); h.State != entities.ValuationStateCancelled || h.Result != nil {
		t.Fatalf("late completion of a superseded request must be dropped: %+v", h)
	}

	tr.Fail(second, errors.New("boom"))
	if h, _ := tr.Get(second); h.State != entities.ValuationStateFailed || h.Reason != "network_failure" {
		t.Fatalf("unexpected second handle: %+v", h)
	}
	if h, _ := tr.Get(other); h.State != entities.ValuationStatePending {
		t.Fatalf("unexpected other handle: %+v", h)
	}
}

func TestValuationTracker_NoSessionNeverSupersedes(t *testing.T) {
	tr := NewValuationTracker(10)
	a, _ := tr.Begin(context.Background(), "")
	b, _ := tr.Begin(context.Background(), "")
	if a.Err() != nil || b.Err() != nil {
		t.Fatalf("anonymous requests must run independently")
	}
}

func TestValuationTracker_EvictsOldestFinished(t *testing.T) {
	tr := NewValuationTracker(2)

	_, pending := tr.Begin(context.Background(), "")
	_, done := tr.Begin(context.Background(), "")
	tr.Complete(done, entities.ValuationResult{})
	_, latest := tr.Begin(context.Background(), "")

	if _, ok := tr.Get(done); ok {
		t.Fatalf("finished handle should have been evicted")
	}
	if _, ok := tr.Get(pending); !ok {
		t.Fatalf("pending handle must never be evicted")
	}
	if _, ok := tr.Get(latest); !ok {
		t.Fatalf("latest handle missing")
	}
}
