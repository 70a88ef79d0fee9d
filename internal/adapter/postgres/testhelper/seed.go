package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldops/workboard-backend/internal/domain"
)

// SeedWorkOrder inserts a minimal work order and returns its domain form.
// Optional mutators adjust the record before insertion.
func SeedWorkOrder(t *testing.T, pool *pgxpool.Pool, mutate ...func(*domain.WorkOrder)) domain.WorkOrder {
	t.Helper()

	w := domain.WorkOrder{
		ID:             uuid.New(),
		Status:         domain.StatusListed,
		Client:         "Acme SRL",
		Location:       "Cluj",
		EquipmentLabel: "Pump X1",
		OfferResponse:  domain.OfferResponseNone,
		EquipmentState: domain.EquipmentFunctional,
		LastModifiedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, m := range mutate {
		m(&w)
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO work_orders (
			id, status, assigned_technicians, client, location, equipment_label,
			report_number, claimed_by, equipment_verified, arrival_time_recorded,
			offer_requested, offer_versions, offer_total, offer_response,
			report_generated, report_picked_up, invoice_ref, no_invoice_reason,
			equipment_state, scheduled_at, last_modified_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		w.ID, w.Status, w.AssignedTechnicians, w.Client, w.Location, w.EquipmentLabel,
		w.ReportNumber, w.ClaimedBy, w.EquipmentVerified, w.ArrivalTimeRecorded,
		w.OfferRequested, w.OfferVersions, w.OfferTotal, w.OfferResponse,
		w.ReportGenerated, w.ReportPickedUp, w.InvoiceRef, w.NoInvoiceReason,
		w.EquipmentState, w.ScheduledAt, w.LastModifiedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("seed work order: %v", err)
	}

	return w
}
