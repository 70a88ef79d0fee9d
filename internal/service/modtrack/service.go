package modtrack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/fieldops/workboard-backend/internal/domain"
)

type modificationLog interface {
	Append(ctx context.Context, event domain.ModificationEvent) (uuid.UUID, error)
	ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID, since time.Time) ([]domain.ModificationEvent, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// Tracker turns work-order updates into persisted modification events.
// Persistence is best-effort: each event is appended independently, a
// failed write is logged and dropped, and nothing ever propagates back
// to the caller that triggered the update.
type Tracker struct {
	modlog modificationLog
	clock  clockwork.Clock
	log    *slog.Logger
}

// NewTracker creates a change tracker.
func NewTracker(log *slog.Logger, modlog modificationLog, clock clockwork.Clock) *Tracker {
	return &Tracker{
		modlog: modlog,
		clock:  clock,
		log:    log.With("service", "modtrack"),
	}
}

// Record diffs the two states and persists the resulting events. It
// returns the events it emitted, whether or not each write succeeded.
func (t *Tracker) Record(ctx context.Context, old, updated domain.WorkOrder, actor domain.Actor) []domain.ModificationEvent {
	events := Diff(old, updated, actor, t.clock.Now())
	for _, ev := range events {
		t.append(ctx, ev)
	}
	return events
}

// RecordDetail persists a detail-change event supplied by a caller that
// already knows what changed (e.g. a settings form).
func (t *Tracker) RecordDetail(ctx context.Context, order domain.WorkOrder, actor domain.Actor, description, oldValue, newValue string) {
	t.append(ctx, domain.ModificationEvent{
		ID:          uuid.New(),
		WorkOrderID: order.ID,
		Title:       order.Title(),
		Kind:        domain.ModificationDetails,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		OldValue:    oldValue,
		NewValue:    newValue,
		Description: description,
		Priority:    domain.PriorityLow,
		OccurredAt:  t.clock.Now(),
	})
}

// RecordCompletion persists a completion event (report generated,
// intervention closed out).
func (t *Tracker) RecordCompletion(ctx context.Context, order domain.WorkOrder, actor domain.Actor, description string) {
	t.append(ctx, domain.ModificationEvent{
		ID:          uuid.New(),
		WorkOrderID: order.ID,
		Title:       order.Title(),
		Kind:        domain.ModificationCompletion,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Description: description,
		Priority:    domain.PriorityHigh,
		OccurredAt:  t.clock.Now(),
	})
}

// History returns the change log of one work order over the given
// window. Unlike writes, read failures are the caller's problem.
func (t *Tracker) History(ctx context.Context, workOrderID uuid.UUID, window time.Duration) ([]domain.ModificationEvent, error) {
	since := t.clock.Now().Add(-window)
	events, err := t.modlog.ListByWorkOrder(ctx, workOrderID, since)
	if err != nil {
		return nil, fmt.Errorf("list modification events: %w", err)
	}
	return events, nil
}

// MarkRead flags one event as seen by the UI.
func (t *Tracker) MarkRead(ctx context.Context, eventID uuid.UUID) error {
	if err := t.modlog.MarkRead(ctx, eventID); err != nil {
		return fmt.Errorf("mark event read: %w", err)
	}
	return nil
}

// append writes one event, swallowing failures. Audit delivery is
// at-most-once; the triggering update must succeed regardless.
func (t *Tracker) append(ctx context.Context, ev domain.ModificationEvent) {
	if _, err := t.modlog.Append(ctx, ev); err != nil {
		t.log.ErrorContext(ctx, "append modification event failed",
			slog.String("work_order_id", ev.WorkOrderID.String()),
			slog.String("kind", ev.Kind.String()),
			slog.String("error", err.Error()),
		)
	}
}
