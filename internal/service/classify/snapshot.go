package classify

import (
	"sync/atomic"
	"time"

	"github.com/fieldops/workboard-backend/internal/domain"
)

// Snapshot is one completed classification pass.
type Snapshot struct {
	Buckets     domain.BucketSet `json:"buckets"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// SnapshotHolder publishes the latest snapshot to concurrent readers.
// The background poller stores, HTTP handlers load; no locks needed.
type SnapshotHolder struct {
	ptr atomic.Pointer[Snapshot]
}

// Store replaces the published snapshot.
func (h *SnapshotHolder) Store(s Snapshot) {
	h.ptr.Store(&s)
}

// Latest returns the published snapshot, or false before the first pass.
func (h *SnapshotHolder) Latest() (Snapshot, bool) {
	p := h.ptr.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}
