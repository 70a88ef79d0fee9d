package modtrack

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fieldops/workboard-backend/internal/domain"
)

var testActor = domain.Actor{ID: uuid.New(), Name: "Maria D."}

func baseOrder() domain.WorkOrder {
	return domain.WorkOrder{
		ID:       uuid.New(),
		Status:   domain.StatusListed,
		Client:   "Acme SRL",
		Location: "Cluj",
	}
}

func TestDiff_NoChanges(t *testing.T) {
	t.Parallel()

	w := baseOrder()
	if events := Diff(w, w, testActor, time.Now()); len(events) != 0 {
		t.Fatalf("identical states produced %d events, want 0", len(events))
	}
}

func TestDiff_StatusOnly(t *testing.T) {
	t.Parallel()

	old := baseOrder()
	updated := old
	updated.Status = domain.StatusInProgress

	events := Diff(old, updated, testActor, time.Now())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Kind != domain.ModificationStatus {
		t.Errorf("kind: got %s, want %s", ev.Kind, domain.ModificationStatus)
	}
	if ev.OldValue != "LISTED" || ev.NewValue != "IN_PROGRESS" {
		t.Errorf("values: got %q -> %q", ev.OldValue, ev.NewValue)
	}
	if ev.Description != `Status changed from "LISTED" to "IN_PROGRESS"` {
		t.Errorf("description: got %q", ev.Description)
	}
	if ev.Priority != domain.PriorityMedium {
		t.Errorf("priority: got %s, want MEDIUM", ev.Priority)
	}
	if ev.Title != "Acme SRL - Cluj" {
		t.Errorf("title: got %q", ev.Title)
	}
	if ev.ActorName != testActor.Name || ev.ActorID != testActor.ID {
		t.Errorf("actor: got %s/%s", ev.ActorID, ev.ActorName)
	}
}

func TestDiff_TerminalStatusIsHighPriority(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.Status{domain.StatusCompleted, domain.StatusPostponed} {
		old := baseOrder()
		updated := old
		updated.Status = status

		events := Diff(old, updated, testActor, time.Now())
		if len(events) != 1 || events[0].Priority != domain.PriorityHigh {
			t.Errorf("transition to %s: expected one HIGH event, got %+v", status, events)
		}
	}
}

func TestDiff_FirstAssignmentIsHighPriority(t *testing.T) {
	t.Parallel()

	old := baseOrder()
	updated := old
	updated.AssignedTechnicians = []string{"Alice"}

	events := Diff(old, updated, testActor, time.Now())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != domain.ModificationAssignment {
		t.Errorf("kind: got %s", events[0].Kind)
	}
	if events[0].Priority != domain.PriorityHigh {
		t.Errorf("first assignment priority: got %s, want HIGH", events[0].Priority)
	}
}

func TestDiff_ReassignmentIsMediumPriority(t *testing.T) {
	t.Parallel()

	old := baseOrder()
	old.AssignedTechnicians = []string{"Alice"}
	updated := old
	updated.AssignedTechnicians = []string{"Alice", "Bob"}

	events := Diff(old, updated, testActor, time.Now())
	if len(events) != 1 || events[0].Priority != domain.PriorityMedium {
		t.Fatalf("expected one MEDIUM assignment event, got %+v", events)
	}
	if events[0].OldValue != "Alice" || events[0].NewValue != "Alice, Bob" {
		t.Errorf("values: got %q -> %q", events[0].OldValue, events[0].NewValue)
	}
}

func TestDiff_TechnicianOrderMatters(t *testing.T) {
	t.Parallel()

	// The joined representation preserves order, so a reorder is a change.
	old := baseOrder()
	old.AssignedTechnicians = []string{"Alice", "Bob"}
	updated := old
	updated.AssignedTechnicians = []string{"Bob", "Alice"}

	if events := Diff(old, updated, testActor, time.Now()); len(events) != 1 {
		t.Fatalf("reordered technicians: got %d events, want 1", len(events))
	}
}

func TestDiff_ScheduleChange(t *testing.T) {
	t.Parallel()

	old := baseOrder()
	old.ScheduledAt = "15.03.2024 10:00"
	updated := old
	updated.ScheduledAt = "16.03.2024 09:00"

	events := Diff(old, updated, testActor, time.Now())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != domain.ModificationSchedule || events[0].Priority != domain.PriorityMedium {
		t.Errorf("got %s/%s, want SCHEDULE/MEDIUM", events[0].Kind, events[0].Priority)
	}
}

func TestDiff_MultipleChangesEmitMultipleEvents(t *testing.T) {
	t.Parallel()

	old := baseOrder()
	updated := old
	updated.Status = domain.StatusAssigned
	updated.AssignedTechnicians = []string{"Alice"}

	events := Diff(old, updated, testActor, time.Now())
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	kinds := map[domain.ModificationKind]bool{}
	for _, ev := range events {
		kinds[ev.Kind] = true
	}
	if !kinds[domain.ModificationStatus] || !kinds[domain.ModificationAssignment] {
		t.Errorf("kinds: got %v", kinds)
	}
}

func TestDiff_TitleFallbacks(t *testing.T) {
	t.Parallel()

	old := baseOrder()
	old.Client = ""
	old.Location = "Cluj"
	updated := old
	updated.Status = domain.StatusCompleted

	events := Diff(old, updated, testActor, time.Now())
	if len(events) != 1 || events[0].Title != "Cluj" {
		t.Fatalf("title fallback: got %+v", events)
	}
}
