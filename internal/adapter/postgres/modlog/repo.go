// Package modlog implements the modification-log repository using
// PostgreSQL. The log is append-only: rows are never updated except for
// the is_read flag, and duplicates from retried appends are acceptable.
package modlog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/fieldops/workboard-backend/internal/adapter/postgres"
	"github.com/fieldops/workboard-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const eventColumns = `id, work_order_id, title, kind, actor_id, actor_name,
	old_value, new_value, description, priority, occurred_at, is_read`

// Repo provides modification-log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a modification-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{db: pool}
}

// Append inserts one event and returns its id. A zero event ID is
// assigned here so callers can stay ignorant of identity generation.
func (r *Repo) Append(ctx context.Context, event domain.ModificationEvent) (uuid.UUID, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	var actorID any
	if event.ActorID != uuid.Nil {
		actorID = event.ActorID
	}

	sql, args, err := qb.
		Insert("modification_log").
		Columns("id", "work_order_id", "title", "kind", "actor_id", "actor_name",
			"old_value", "new_value", "description", "priority", "occurred_at", "is_read").
		Values(event.ID, event.WorkOrderID, event.Title, event.Kind.String(), actorID, event.ActorName,
			event.OldValue, event.NewValue, event.Description, event.Priority.String(), event.OccurredAt, event.Read).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build append query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return uuid.Nil, postgres.MapError(err, "modification_event", event.ID)
	}

	return event.ID, nil
}

// ListByWorkOrder returns the change history for one work order since
// the given instant, newest first.
func (r *Repo) ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID, since time.Time) ([]domain.ModificationEvent, error) {
	sql, args, err := qb.
		Select(eventColumns).
		From("modification_log").
		Where(sq.Eq{"work_order_id": workOrderID}).
		Where(sq.GtOrEq{"occurred_at": since}).
		OrderBy("occurred_at DESC, id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// ListAssignmentsSince returns assignment events at or after the given
// instant, across all work orders. Feeds the delayed-order rule.
func (r *Repo) ListAssignmentsSince(ctx context.Context, since time.Time) ([]domain.ModificationEvent, error) {
	sql, args, err := qb.
		Select(eventColumns).
		From("modification_log").
		Where(sq.Eq{"kind": domain.ModificationAssignment.String()}).
		Where(sq.GtOrEq{"occurred_at": since}).
		OrderBy("occurred_at, id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignments query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// MarkRead flips the is_read flag of one event. The only mutation the
// log permits.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) error {
	sql, args, err := qb.
		Update("modification_log").
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark-read query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "modification_event", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("modification_event %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) queryEvents(ctx context.Context, sql string, args []any) ([]domain.ModificationEvent, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query modification_log: %w", err)
	}
	defer rows.Close()

	var events []domain.ModificationEvent
	for rows.Next() {
		var (
			ev      domain.ModificationEvent
			actorID *uuid.UUID
		)
		err := rows.Scan(
			&ev.ID, &ev.WorkOrderID, &ev.Title, &ev.Kind, &actorID, &ev.ActorName,
			&ev.OldValue, &ev.NewValue, &ev.Description, &ev.Priority, &ev.OccurredAt, &ev.Read,
		)
		if err != nil {
			return nil, fmt.Errorf("scan modification event: %w", err)
		}
		if actorID != nil {
			ev.ActorID = *actorID
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate modification_log: %w", err)
	}

	return events, nil
}
