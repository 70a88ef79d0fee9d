package domain

// CategoryCount is one counted notification category.
type CategoryCount struct {
	Category    NotificationCategory `json:"category"`
	Count       int                  `json:"count"`
	Description string               `json:"description"`
	Priority    Priority             `json:"priority"`
}

// NotificationSummary aggregates the post-epoch snapshot into counted
// categories. CriticalCount sums the high-priority categories.
type NotificationSummary struct {
	Categories    []CategoryCount `json:"categories"`
	TotalCount    int             `json:"total_count"`
	CriticalCount int             `json:"critical_count"`
}
