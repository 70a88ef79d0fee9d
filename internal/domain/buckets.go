package domain

// BucketSet holds the ten operational-alert buckets produced by one
// classification pass. Buckets are not mutually exclusive: one order
// may appear in several. Fixed struct fields (rather than a map) keep
// iteration order and JSON output deterministic.
type BucketSet struct {
	Delayed           []OrderSummary `json:"delayed"`
	Postponed         []OrderSummary `json:"postponed"`
	Unassigned        []OrderSummary `json:"unassigned"`
	PendingPickup     []OrderSummary `json:"pending_pickup"`
	Uninvoiced        []OrderSummary `json:"uninvoiced"`
	NeedsQuote        []OrderSummary `json:"needs_quote"`
	Quoted            []OrderSummary `json:"quoted"`
	QuoteAccepted     []OrderSummary `json:"quote_accepted"`
	QuoteRejected     []OrderSummary `json:"quote_rejected"`
	EquipmentDegraded []OrderSummary `json:"equipment_degraded"`
}

// Bucket returns the summaries for a named bucket. Unknown names return nil.
func (b BucketSet) Bucket(name BucketName) []OrderSummary {
	switch name {
	case BucketDelayed:
		return b.Delayed
	case BucketPostponed:
		return b.Postponed
	case BucketUnassigned:
		return b.Unassigned
	case BucketPendingPickup:
		return b.PendingPickup
	case BucketUninvoiced:
		return b.Uninvoiced
	case BucketNeedsQuote:
		return b.NeedsQuote
	case BucketQuoted:
		return b.Quoted
	case BucketQuoteAccepted:
		return b.QuoteAccepted
	case BucketQuoteRejected:
		return b.QuoteRejected
	case BucketEquipmentDegraded:
		return b.EquipmentDegraded
	}
	return nil
}
