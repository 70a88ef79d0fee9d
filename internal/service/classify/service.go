package classify

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/fieldops/workboard-backend/internal/config"
	"github.com/fieldops/workboard-backend/internal/domain"
	"github.com/fieldops/workboard-backend/pkg/flextime"
)

type workOrderRepo interface {
	ListActive(ctx context.Context) ([]domain.WorkOrder, error)
}

type modificationLog interface {
	ListAssignmentsSince(ctx context.Context, since time.Time) ([]domain.ModificationEvent, error)
}

// Service runs classification passes over the current work-order
// snapshot. It holds no mutable state; concurrent calls are safe.
type Service struct {
	orders     workOrderRepo
	modlog     modificationLog
	clock      clockwork.Clock
	loc        *time.Location
	cutoffHour int
	log        *slog.Logger
}

// NewService creates a classification service.
func NewService(
	log *slog.Logger,
	orders workOrderRepo,
	modlog modificationLog,
	clock clockwork.Clock,
	cfg config.ClassifierConfig,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		orders:     orders,
		modlog:     modlog,
		clock:      clock,
		loc:        loc,
		cutoffHour: cfg.DelayedCutoffHour,
		log:        log.With("service", "classify"),
	}
}

// Classify loads the snapshot and today's assignment events, then
// applies the bucket rules. Deterministic given identical snapshot
// and clock reading.
func (s *Service) Classify(ctx context.Context) (domain.BucketSet, error) {
	now := s.clock.Now()

	orders, err := s.orders.ListActive(ctx)
	if err != nil {
		return domain.BucketSet{}, fmt.Errorf("list work orders: %w", err)
	}

	return BuildBuckets(orders, Rules{
		Now:               now,
		Location:          s.loc,
		DelayedCutoffHour: s.cutoffHour,
		AssignedAt:        s.todayAssignments(ctx, now),
	}), nil
}

// Boards builds the personal boards for a dispatcher and the given
// technicians from the same snapshot. With no technicians given, every
// technician named on an active order gets a board.
func (s *Service) Boards(ctx context.Context, dispatcher string, technicians []string) (domain.BoardSet, error) {
	orders, err := s.orders.ListActive(ctx)
	if err != nil {
		return domain.BoardSet{}, fmt.Errorf("list work orders: %w", err)
	}

	if len(technicians) == 0 {
		technicians = knownTechnicians(orders)
	}

	return BuildBoards(orders, dispatcher, technicians), nil
}

// knownTechnicians collects the distinct technician names across the
// snapshot, sorted for stable board order.
func knownTechnicians(orders []domain.WorkOrder) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, order := range orders {
		if order.Status == domain.StatusArchived {
			continue
		}
		for _, tech := range order.AssignedTechnicians {
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			names = append(names, tech)
		}
	}
	sort.Strings(names)
	return names
}

// todayAssignments reads today's assignment events and keeps the most
// recent timestamp per order. A modification-log read failure degrades
// to the last-modified fallback instead of failing the pass: the log is
// auxiliary and may be sparse or unavailable.
func (s *Service) todayAssignments(ctx context.Context, now time.Time) map[uuid.UUID]time.Time {
	dayStart := flextime.DayStart(now, s.loc)

	events, err := s.modlog.ListAssignmentsSince(ctx, dayStart)
	if err != nil {
		s.log.WarnContext(ctx, "modification log unavailable, using last-modified fallback",
			slog.String("error", err.Error()),
		)
		return nil
	}

	latest := make(map[uuid.UUID]time.Time, len(events))
	for _, ev := range events {
		if ev.Kind != domain.ModificationAssignment {
			continue
		}
		if cur, ok := latest[ev.WorkOrderID]; !ok || ev.OccurredAt.After(cur) {
			latest[ev.WorkOrderID] = ev.OccurredAt
		}
	}
	return latest
}
