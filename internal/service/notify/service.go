package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/fieldops/workboard-backend/internal/config"
	"github.com/fieldops/workboard-backend/internal/domain"
)

type workOrderRepo interface {
	ListActive(ctx context.Context) ([]domain.WorkOrder, error)
}

// Service produces notification summaries over the current snapshot.
type Service struct {
	orders       workOrderRepo
	clock        clockwork.Clock
	epoch        time.Time
	overdueAfter time.Duration
	log          *slog.Logger
}

// NewService creates a notification service.
func NewService(
	log *slog.Logger,
	orders workOrderRepo,
	clock clockwork.Clock,
	cfg config.NotificationsConfig,
) *Service {
	return &Service{
		orders:       orders,
		clock:        clock,
		epoch:        cfg.Epoch,
		overdueAfter: cfg.OverdueAfter,
		log:          log.With("service", "notify"),
	}
}

// Summarize loads the snapshot and reduces it to the counted categories.
func (s *Service) Summarize(ctx context.Context) (domain.NotificationSummary, error) {
	orders, err := s.orders.ListActive(ctx)
	if err != nil {
		return domain.NotificationSummary{}, fmt.Errorf("list work orders: %w", err)
	}

	return BuildSummary(orders, s.epoch, s.clock.Now(), s.overdueAfter), nil
}
