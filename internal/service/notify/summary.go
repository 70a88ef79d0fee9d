package notify

import (
	"fmt"
	"time"

	"github.com/fieldops/workboard-backend/internal/domain"
)

// BuildSummary reduces the snapshot to counted notification categories.
// Orders last modified before epoch are dropped entirely, so a cutover
// deployment starts without historical noise; orders whose timestamp is
// unknown are kept for status-based categories but never count as
// overdue. Pure: same inputs, same output.
func BuildSummary(orders []domain.WorkOrder, epoch, now time.Time, overdueAfter time.Duration) domain.NotificationSummary {
	var unassigned, inProgress, uninvoiced, postponed, overdue int
	overdueBefore := now.Add(-overdueAfter)

	for _, w := range orders {
		if w.Status == domain.StatusArchived {
			continue
		}
		if !w.LastModifiedAt.IsZero() && w.LastModifiedAt.Before(epoch) {
			continue
		}

		if len(w.AssignedTechnicians) == 0 {
			unassigned++
		}

		switch w.Status {
		case domain.StatusInProgress, domain.StatusListed, domain.StatusAssigned, domain.StatusWaiting:
			inProgress++
		case domain.StatusCompleted:
			if !w.HasInvoiceRef() {
				uninvoiced++
			}
		case domain.StatusPostponed:
			postponed++
		case domain.StatusArchived:
		}

		if w.Status != domain.StatusCompleted && w.Status != domain.StatusPostponed &&
			!w.LastModifiedAt.IsZero() && w.LastModifiedAt.Before(overdueBefore) {
			overdue++
		}
	}

	summary := domain.NotificationSummary{}
	add := func(cat domain.NotificationCategory, count int, desc string, prio domain.Priority) {
		if count == 0 {
			return
		}
		summary.Categories = append(summary.Categories, domain.CategoryCount{
			Category:    cat,
			Count:       count,
			Description: desc,
			Priority:    prio,
		})
		summary.TotalCount += count
		if prio == domain.PriorityHigh {
			summary.CriticalCount += count
		}
	}

	add(domain.CategoryUnassigned, unassigned,
		fmt.Sprintf("%d work orders without an assigned technician", unassigned), domain.PriorityHigh)
	add(domain.CategoryInProgress, inProgress,
		fmt.Sprintf("%d work orders in progress", inProgress), domain.PriorityMedium)
	add(domain.CategoryCompletedUninvoiced, uninvoiced,
		fmt.Sprintf("%d completed work orders without an invoice", uninvoiced), domain.PriorityHigh)
	add(domain.CategoryPostponed, postponed,
		fmt.Sprintf("%d postponed work orders", postponed), domain.PriorityHigh)
	add(domain.CategoryOverdue, overdue,
		fmt.Sprintf("%d work orders with no activity for over %d days", overdue, int(overdueAfter.Hours()/24)), domain.PriorityHigh)

	return summary
}
