package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkOrder is the normalized snapshot of a field-service work order.
// The repository adapter produces it from whatever raw shape the store
// holds; everything downstream works with this one struct.
type WorkOrder struct {
	ID     uuid.UUID
	Status Status

	// AssignedTechnicians preserves assignment order. Empty means the
	// order has not been handed to anyone yet.
	AssignedTechnicians []string

	Client         string
	Location       string
	EquipmentLabel string
	ReportNumber   string

	// ClaimedBy is the display identity of the dispatcher coordinating
	// the order. Matching against it is exact, including case.
	ClaimedBy string

	EquipmentVerified   bool
	ArrivalTimeRecorded bool

	OfferRequested bool
	OfferVersions  int
	OfferTotal     float64
	OfferResponse  OfferResponse

	ReportGenerated bool
	ReportPickedUp  bool

	InvoiceRef      string
	NoInvoiceReason string

	EquipmentState EquipmentState

	// ScheduledAt is kept in its raw display form; the change tracker
	// compares it verbatim.
	ScheduledAt string

	// LastModifiedAt is zero when the stored timestamp could not be
	// parsed. Time-gated rules skip such orders; everything else still
	// evaluates them.
	LastModifiedAt time.Time
}

// Assigned reports whether the order counts as handed out: at least one
// technician, or a status that says so.
func (w WorkOrder) Assigned() bool {
	return len(w.AssignedTechnicians) > 0 || w.Status == StatusAssigned
}

// FieldWorkStarted reports whether any on-site action was recorded.
func (w WorkOrder) FieldWorkStarted() bool {
	return w.ArrivalTimeRecorded || w.EquipmentVerified
}

// HasInvoiceRef reports whether an invoice reference was recorded.
func (w WorkOrder) HasInvoiceRef() bool {
	return strings.TrimSpace(w.InvoiceRef) != ""
}

// Title derives the "client - location" label used on modification
// events. When one side is missing the other stands alone; when both
// are missing a fixed placeholder is used.
func (w WorkOrder) Title() string {
	client := strings.TrimSpace(w.Client)
	location := strings.TrimSpace(w.Location)
	switch {
	case client != "" && location != "":
		return client + " - " + location
	case client != "":
		return client
	case location != "":
		return location
	default:
		return "Work order"
	}
}

// Summary reduces the order to the lightweight item exposed in buckets
// and boards.
func (w WorkOrder) Summary() OrderSummary {
	return OrderSummary{
		ID:             w.ID,
		Location:       w.Location,
		EquipmentLabel: w.EquipmentLabel,
		Client:         w.Client,
		ReportNumber:   w.ReportNumber,
	}
}

// OrderSummary is the read-model item carried by buckets and boards.
// It is never a source of truth.
type OrderSummary struct {
	ID             uuid.UUID `json:"id"`
	Location       string    `json:"location"`
	EquipmentLabel string    `json:"equipment_label"`
	Client         string    `json:"client"`
	ReportNumber   string    `json:"report_number,omitempty"`
}
