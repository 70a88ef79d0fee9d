package domain

import "strings"

// Status represents the lifecycle state of a work order.
type Status string

const (
	StatusListed     Status = "LISTED"
	StatusAssigned   Status = "ASSIGNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusWaiting    Status = "WAITING"
	StatusPostponed  Status = "POSTPONED"
	StatusCompleted  Status = "COMPLETED"
	StatusArchived   Status = "ARCHIVED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusListed, StatusAssigned, StatusInProgress, StatusWaiting,
		StatusPostponed, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// ParseStatus maps a raw status string onto the enum, ignoring case and
// surrounding whitespace. Unrecognized values return ok=false so callers
// can skip the record instead of silently misclassifying it.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s, true
	}
	return "", false
}

// OfferResponse is the client's recorded answer to a repair offer.
type OfferResponse string

const (
	OfferResponseNone     OfferResponse = "NONE"
	OfferResponseAccepted OfferResponse = "ACCEPTED"
	OfferResponseRejected OfferResponse = "REJECTED"
)

func (o OfferResponse) String() string { return string(o) }

func (o OfferResponse) IsValid() bool {
	switch o {
	case OfferResponseNone, OfferResponseAccepted, OfferResponseRejected:
		return true
	}
	return false
}

// EquipmentState classifies how operational the serviced equipment is.
type EquipmentState string

const (
	EquipmentFunctional    EquipmentState = "FUNCTIONAL"
	EquipmentPartial       EquipmentState = "PARTIAL"
	EquipmentNonFunctional EquipmentState = "NON_FUNCTIONAL"
)

func (e EquipmentState) String() string { return string(e) }

func (e EquipmentState) IsValid() bool {
	switch e {
	case EquipmentFunctional, EquipmentPartial, EquipmentNonFunctional:
		return true
	}
	return false
}

// Degraded reports whether the equipment needs attention.
func (e EquipmentState) Degraded() bool {
	return e == EquipmentPartial || e == EquipmentNonFunctional
}

// ModificationKind identifies what aspect of a work order changed.
type ModificationKind string

const (
	ModificationStatus     ModificationKind = "STATUS"
	ModificationAssignment ModificationKind = "ASSIGNMENT"
	ModificationSchedule   ModificationKind = "SCHEDULE"
	ModificationDetails    ModificationKind = "DETAILS"
	ModificationCompletion ModificationKind = "COMPLETION"
)

func (k ModificationKind) String() string { return string(k) }

func (k ModificationKind) IsValid() bool {
	switch k {
	case ModificationStatus, ModificationAssignment, ModificationSchedule,
		ModificationDetails, ModificationCompletion:
		return true
	}
	return false
}

// Priority ranks a modification event or notification category.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// BucketName identifies one of the fixed operational-alert buckets.
type BucketName string

const (
	BucketDelayed           BucketName = "DELAYED"
	BucketPostponed         BucketName = "POSTPONED"
	BucketUnassigned        BucketName = "UNASSIGNED"
	BucketPendingPickup     BucketName = "PENDING_PICKUP"
	BucketUninvoiced        BucketName = "UNINVOICED"
	BucketNeedsQuote        BucketName = "NEEDS_QUOTE"
	BucketQuoted            BucketName = "QUOTED"
	BucketQuoteAccepted     BucketName = "QUOTE_ACCEPTED"
	BucketQuoteRejected     BucketName = "QUOTE_REJECTED"
	BucketEquipmentDegraded BucketName = "EQUIPMENT_DEGRADED"
)

func (b BucketName) String() string { return string(b) }

// NotificationCategory identifies one category of the notification summary.
type NotificationCategory string

const (
	CategoryUnassigned          NotificationCategory = "UNASSIGNED"
	CategoryInProgress          NotificationCategory = "IN_PROGRESS"
	CategoryCompletedUninvoiced NotificationCategory = "COMPLETED_UNINVOICED"
	CategoryPostponed           NotificationCategory = "POSTPONED"
	CategoryOverdue             NotificationCategory = "OVERDUE"
)

func (c NotificationCategory) String() string { return string(c) }
