package classify

import (
	"slices"

	"github.com/fieldops/workboard-backend/internal/domain"
)

// BuildBoards partitions the snapshot by owning actor: one board for the
// dispatcher (orders claimed by them) and one board per technician with
// at least one matching order. Name matching is exact, including case —
// display identities must match verbatim, unlike status parsing.
func BuildBoards(orders []domain.WorkOrder, dispatcher string, technicians []string) domain.BoardSet {
	out := domain.BoardSet{
		Dispatcher: domain.PersonalBoard{Owner: dispatcher},
	}

	for _, order := range orders {
		if order.Status == domain.StatusArchived {
			continue
		}
		if dispatcher != "" && order.ClaimedBy == dispatcher {
			out.Dispatcher.Items = append(out.Dispatcher.Items, order.Summary())
		}
	}

	for _, tech := range technicians {
		var items []domain.OrderSummary
		for _, order := range orders {
			if order.Status == domain.StatusArchived {
				continue
			}
			if slices.Contains(order.AssignedTechnicians, tech) {
				items = append(items, order.Summary())
			}
		}
		if len(items) > 0 {
			out.Technicians = append(out.Technicians, domain.PersonalBoard{
				Owner: tech,
				Items: items,
			})
		}
	}

	return out
}
