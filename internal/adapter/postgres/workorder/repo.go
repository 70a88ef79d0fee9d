// Package workorder implements the work-order repository using
// PostgreSQL. It is read-only from the engine's point of view: the CRUD
// application owns the rows, this side only takes snapshots.
package workorder

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/fieldops/workboard-backend/internal/adapter/postgres"
	"github.com/fieldops/workboard-backend/internal/domain"
	"github.com/fieldops/workboard-backend/pkg/flextime"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const workOrderColumns = `id, status, assigned_technicians, client, location, equipment_label,
	report_number, claimed_by, equipment_verified, arrival_time_recorded,
	offer_requested, offer_versions, offer_total, offer_response,
	report_generated, report_picked_up, invoice_ref, no_invoice_reason,
	equipment_state, scheduled_at, last_modified_at`

// Repo provides read access to work orders backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	loc *time.Location
}

// New creates a work-order repository. loc is the zone used to
// interpret zone-less legacy timestamps.
func New(pool *pgxpool.Pool, loc *time.Location) *Repo {
	if loc == nil {
		loc = time.UTC
	}
	return &Repo{db: pool, loc: loc}
}

// ListActive returns the snapshot of all non-archived work orders.
func (r *Repo) ListActive(ctx context.Context) ([]domain.WorkOrder, error) {
	sql, args, err := qb.
		Select(workOrderColumns).
		From("work_orders").
		Where(sq.NotEq{"status": domain.StatusArchived.String()}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.WorkOrder
	for rows.Next() {
		w, err := r.scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work orders: %w", err)
	}

	return orders, nil
}

// GetByID returns a single work order.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.WorkOrder, error) {
	sql, args, err := qb.
		Select(workOrderColumns).
		From("work_orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.WorkOrder{}, fmt.Errorf("build get query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return domain.WorkOrder{}, postgres.MapError(err, "work_order", id)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.WorkOrder{}, postgres.MapError(err, "work_order", id)
		}
		return domain.WorkOrder{}, fmt.Errorf("work_order %s: %w", id, domain.ErrNotFound)
	}

	return r.scanWorkOrder(rows)
}

// rowScanner is satisfied by pgx.Rows and pgx.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanWorkOrder maps one row onto the normalized domain struct. This is
// the single place where legacy representations collapse into canonical
// fields: status strings are parsed case-insensitively and loose
// timestamp formats become a time.Time or stay zero.
func (r *Repo) scanWorkOrder(row rowScanner) (domain.WorkOrder, error) {
	var (
		w               domain.WorkOrder
		rawStatus       string
		rawResponse     string
		rawState        string
		rawLastModified string
	)

	err := row.Scan(
		&w.ID, &rawStatus, &w.AssignedTechnicians, &w.Client, &w.Location, &w.EquipmentLabel,
		&w.ReportNumber, &w.ClaimedBy, &w.EquipmentVerified, &w.ArrivalTimeRecorded,
		&w.OfferRequested, &w.OfferVersions, &w.OfferTotal, &rawResponse,
		&w.ReportGenerated, &w.ReportPickedUp, &w.InvoiceRef, &w.NoInvoiceReason,
		&rawState, &w.ScheduledAt, &rawLastModified,
	)
	if err != nil {
		return domain.WorkOrder{}, fmt.Errorf("scan work order: %w", err)
	}

	if status, ok := domain.ParseStatus(rawStatus); ok {
		w.Status = status
	} else {
		// Unknown status: keep the uppercased raw value so the order is
		// still visible to rules that do not depend on status.
		w.Status = domain.Status(strings.ToUpper(strings.TrimSpace(rawStatus)))
	}

	w.OfferResponse = domain.OfferResponse(strings.ToUpper(strings.TrimSpace(rawResponse)))
	if !w.OfferResponse.IsValid() {
		w.OfferResponse = domain.OfferResponseNone
	}

	w.EquipmentState = domain.EquipmentState(strings.ToUpper(strings.TrimSpace(rawState)))
	if !w.EquipmentState.IsValid() {
		w.EquipmentState = domain.EquipmentFunctional
	}

	if t, ok := flextime.Parse(rawLastModified, r.loc); ok {
		w.LastModifiedAt = t
	}

	return w, nil
}
