package classify

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldops/workboard-backend/internal/domain"
	"github.com/fieldops/workboard-backend/pkg/flextime"
)

// Rules holds the time parameters of one classification pass.
type Rules struct {
	// Now is the wall-clock instant the pass runs at.
	Now time.Time
	// Location is the zone "today" and the cutoff hour are evaluated in.
	Location *time.Location
	// DelayedCutoffHour is the local hour from which the delayed rule fires.
	DelayedCutoffHour int
	// AssignedAt maps a work order to its most recent assignment event of
	// the current day. Orders absent from the map fall back to their own
	// last-modified timestamp.
	AssignedAt map[uuid.UUID]time.Time
}

// BuildBuckets partitions the snapshot into the ten operational-alert
// buckets. Buckets are independent: every rule is evaluated for every
// order, and one order can land in several buckets. The function is
// pure; calling it twice with the same inputs yields identical output.
func BuildBuckets(orders []domain.WorkOrder, rules Rules) domain.BucketSet {
	var out domain.BucketSet

	loc := rules.Location
	if loc == nil {
		loc = time.UTC
	}
	dayStart := flextime.DayStart(rules.Now, loc)
	pastCutoff := rules.Now.In(loc).Hour() >= rules.DelayedCutoffHour

	for _, order := range orders {
		if order.Status == domain.StatusArchived {
			continue
		}
		item := order.Summary()

		if isDelayed(order, rules, dayStart, pastCutoff) {
			out.Delayed = append(out.Delayed, item)
		}
		if order.Status == domain.StatusPostponed {
			out.Postponed = append(out.Postponed, item)
		}
		if len(order.AssignedTechnicians) == 0 {
			out.Unassigned = append(out.Unassigned, item)
		}
		if order.ReportGenerated && !order.ReportPickedUp {
			out.PendingPickup = append(out.PendingPickup, item)
		}
		if order.ReportGenerated && !order.HasInvoiceRef() && order.NoInvoiceReason == "" {
			out.Uninvoiced = append(out.Uninvoiced, item)
		}
		if order.OfferRequested && order.OfferResponse == domain.OfferResponseNone {
			out.NeedsQuote = append(out.NeedsQuote, item)
		}
		if (order.OfferVersions > 0 || order.OfferTotal > 0) && order.OfferResponse == domain.OfferResponseNone {
			out.Quoted = append(out.Quoted, item)
		}
		switch order.OfferResponse {
		case domain.OfferResponseAccepted:
			out.QuoteAccepted = append(out.QuoteAccepted, item)
		case domain.OfferResponseRejected:
			out.QuoteRejected = append(out.QuoteRejected, item)
		case domain.OfferResponseNone:
		}
		if order.EquipmentState.Degraded() {
			out.EquipmentDegraded = append(out.EquipmentDegraded, item)
		}
	}

	return out
}

// isDelayed applies the time-gated rule: the order was handed out today,
// nobody has touched it in the field, and the local evening cutoff has
// passed. An order whose relevant timestamp is unknown is excluded.
func isDelayed(order domain.WorkOrder, rules Rules, dayStart time.Time, pastCutoff bool) bool {
	if !pastCutoff {
		return false
	}
	if order.Status != domain.StatusAssigned && order.Status != domain.StatusListed {
		return false
	}
	if !order.Assigned() || order.FieldWorkStarted() {
		return false
	}

	assignedAt, ok := rules.AssignedAt[order.ID]
	if !ok {
		// No assignment event today; fall back to the order's own
		// last-modified timestamp.
		assignedAt = order.LastModifiedAt
	}
	if assignedAt.IsZero() {
		return false
	}

	return !assignedAt.Before(dayStart)
}
