package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModificationEvent is an append-only record of a detected change to a
// work order. Once written it is immutable except for the Read flag,
// which the consuming UI flips.
type ModificationEvent struct {
	ID          uuid.UUID
	WorkOrderID uuid.UUID
	Title       string
	Kind        ModificationKind
	ActorID     uuid.UUID
	ActorName   string
	OldValue    string
	NewValue    string
	Description string
	Priority    Priority
	OccurredAt  time.Time
	Read        bool
}

// Actor identifies who performed a change.
type Actor struct {
	ID   uuid.UUID
	Name string
}
