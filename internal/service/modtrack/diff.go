package modtrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldops/workboard-backend/internal/domain"
)

// Diff compares two states of the same work order and emits one event
// per detected change. The rules are independent: a single update can
// produce several events, or none when the tracked fields are equal.
// Only status, assignment and schedule changes are inferred here;
// detail/completion events come from callers that know the semantics
// of their own change.
func Diff(old, updated domain.WorkOrder, actor domain.Actor, at time.Time) []domain.ModificationEvent {
	var events []domain.ModificationEvent

	base := func() domain.ModificationEvent {
		return domain.ModificationEvent{
			ID:          uuid.New(),
			WorkOrderID: updated.ID,
			Title:       updated.Title(),
			ActorID:     actor.ID,
			ActorName:   actor.Name,
			OccurredAt:  at,
		}
	}

	if old.Status != updated.Status {
		ev := base()
		ev.Kind = domain.ModificationStatus
		ev.OldValue = old.Status.String()
		ev.NewValue = updated.Status.String()
		ev.Description = fmt.Sprintf("Status changed from %q to %q", old.Status, updated.Status)
		ev.Priority = statusPriority(updated.Status)
		events = append(events, ev)
	}

	oldTechs := strings.Join(old.AssignedTechnicians, ", ")
	newTechs := strings.Join(updated.AssignedTechnicians, ", ")
	if oldTechs != newTechs {
		ev := base()
		ev.Kind = domain.ModificationAssignment
		ev.OldValue = oldTechs
		ev.NewValue = newTechs
		ev.Description = assignmentDescription(oldTechs, newTechs)
		ev.Priority = domain.PriorityMedium
		// First hand-out of the order is the alert people wait for.
		if len(old.AssignedTechnicians) == 0 && len(updated.AssignedTechnicians) > 0 {
			ev.Priority = domain.PriorityHigh
		}
		events = append(events, ev)
	}

	if old.ScheduledAt != updated.ScheduledAt {
		ev := base()
		ev.Kind = domain.ModificationSchedule
		ev.OldValue = old.ScheduledAt
		ev.NewValue = updated.ScheduledAt
		ev.Description = fmt.Sprintf("Intervention rescheduled from %q to %q", old.ScheduledAt, updated.ScheduledAt)
		ev.Priority = domain.PriorityMedium
		events = append(events, ev)
	}

	return events
}

// statusPriority ranks a status transition: reaching a terminal or
// cancellation-equivalent state is high priority.
func statusPriority(s domain.Status) domain.Priority {
	switch s {
	case domain.StatusCompleted, domain.StatusPostponed:
		return domain.PriorityHigh
	default:
		return domain.PriorityMedium
	}
}

func assignmentDescription(oldTechs, newTechs string) string {
	switch {
	case oldTechs == "":
		return fmt.Sprintf("Assigned to %s", newTechs)
	case newTechs == "":
		return fmt.Sprintf("Unassigned from %s", oldTechs)
	default:
		return fmt.Sprintf("Reassigned from %s to %s", oldTechs, newTechs)
	}
}
