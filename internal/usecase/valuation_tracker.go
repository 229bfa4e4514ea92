package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"wetrade/internal/domain/entities"

	"github.com/google/uuid"
)

type trackedValuation struct {
	handle entities.ValuationHandle
	cancel context.CancelCauseFunc
}

// ValuationTracker keeps request handles in memory. Only the newest request of a
// session may complete: Begin cancels a pending predecessor with ErrCancelled.
// At most limit handles are kept; the oldest finished ones are evicted first.
type ValuationTracker struct {
	mu      sync.Mutex
	limit   int
	entries map[string]*trackedValuation
	order   []string
	active  map[string]string
	now     func() time.Time
}

func NewValuationTracker(limit int) *ValuationTracker {
	if limit <= 0 {
		limit = 256
	}
	return &ValuationTracker{
		limit:   limit,
		entries: map[string]*trackedValuation{},
		active:  map[string]string{},
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Begin registers a pending request and returns the context it must run under.
func (t *ValuationTracker) Begin(parent context.Context, sessionID string) (context.Context, string) {
	ctx, cancel := context.WithCancelCause(parent)
	id := uuid.NewString()
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if sessionID != "" {
		if prevID, ok := t.active[sessionID]; ok {
			if prev := t.entries[prevID]; prev != nil && prev.handle.State == entities.ValuationStatePending {
				prev.handle.State = entities.ValuationStateCancelled
				prev.handle.Reason = FailureReason(ErrCancelled)
				prev.handle.UpdatedAt = now
				prev.cancel(ErrCancelled)
			}
		}
		t.active[sessionID] = id
	}

	t.entries[id] = &trackedValuation{
		handle: entities.ValuationHandle{
			ID:        id,
			SessionID: sessionID,
			State:     entities.ValuationStatePending,
			CreatedAt: now,
			UpdatedAt: now,
		},
		cancel: cancel,
	}
	t.order = append(t.order, id)
	t.evict()
	return ctx, id
}

// Complete records a result. It is a no-op unless the request is still pending.
func (t *ValuationTracker) Complete(id string, result entities.ValuationResult) {
	t.finish(id, func(h *entities.ValuationHandle) {
		h.State = entities.ValuationStateCompleted
		h.Result = &result
	})
}

// Fail records a failure. ErrCancelled is recorded as cancelled.
func (t *ValuationTracker) Fail(id string, err error) {
	t.finish(id, func(h *entities.ValuationHandle) {
		h.State = entities.ValuationStateFailed
		if errors.Is(err, ErrCancelled) {
			h.State = entities.ValuationStateCancelled
		}
		h.Reason = FailureReason(err)
	})
}

func (t *ValuationTracker) Get(id string) (entities.ValuationHandle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return entities.ValuationHandle{}, false
	}
	return e.handle, true
}

func (t *ValuationTracker) finish(id string, apply func(h *entities.ValuationHandle)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return
	}
	if e.handle.SessionID != "" && t.active[e.handle.SessionID] == id {
		delete(t.active, e.handle.SessionID)
	}
	if e.handle.State != entities.ValuationStatePending {
		return
	}
	apply(&e.handle)
	e.handle.UpdatedAt = t.now()
	e.cancel(nil)
}

// evict must be called with the lock held.
func (t *ValuationTracker) evict() {
	for len(t.order) > t.limit {
		idx := -1
		for i, id := range t.order {
			if t.entries[id].handle.State.Terminal() {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
		delete(t.entries, t.order[idx])
		t.order = append(t.order[:idx], t.order[idx+1:]...)
	}
}
