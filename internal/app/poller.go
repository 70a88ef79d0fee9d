package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/fieldops/workboard-backend/internal/domain"
	"github.com/fieldops/workboard-backend/internal/service/classify"
)

type bucketClassifier interface {
	Classify(ctx context.Context) (domain.BucketSet, error)
}

// Poller re-runs classification on a fixed interval and publishes the
// result. Re-running without new data matters: the delayed-order rule
// flips at a clock boundary, not on a write.
type Poller struct {
	classifier bucketClassifier
	snapshot   *classify.SnapshotHolder
	clock      clockwork.Clock
	interval   time.Duration
	log        *slog.Logger
}

// NewPoller creates a classification poller.
func NewPoller(
	logger *slog.Logger,
	classifier bucketClassifier,
	snapshot *classify.SnapshotHolder,
	clock clockwork.Clock,
	interval time.Duration,
) *Poller {
	return &Poller{
		classifier: classifier,
		snapshot:   snapshot,
		clock:      clock,
		interval:   interval,
		log:        logger.With("component", "poller"),
	}
}

// Run performs one immediate pass, then ticks until ctx is cancelled.
// A failed pass keeps the previous snapshot; readers always see the
// last good classification.
func (p *Poller) Run(ctx context.Context) {
	p.pass(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.pass(ctx)
		}
	}
}

func (p *Poller) pass(ctx context.Context) {
	buckets, err := p.classifier.Classify(ctx)
	if err != nil {
		p.log.ErrorContext(ctx, "classification pass failed", slog.String("error", err.Error()))
		return
	}

	p.snapshot.Store(classify.Snapshot{
		Buckets:     buckets,
		GeneratedAt: p.clock.Now(),
	})
}
