package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fieldops/workboard-backend/internal/domain"
	"github.com/fieldops/workboard-backend/internal/service/classify"
)

type classifierService interface {
	Classify(ctx context.Context) (domain.BucketSet, error)
	Boards(ctx context.Context, dispatcher string, technicians []string) (domain.BoardSet, error)
}

// BoardHandler serves the classification read surface: the operational
// alert buckets and the per-person boards.
type BoardHandler struct {
	classifier classifierService
	snapshot   *classify.SnapshotHolder
	log        *slog.Logger
}

// NewBoardHandler creates a BoardHandler. snapshot may hold the
// poller-published result; an empty holder falls back to a live pass.
func NewBoardHandler(classifier classifierService, snapshot *classify.SnapshotHolder, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		classifier: classifier,
		snapshot:   snapshot,
		log:        logger.With("handler", "board"),
	}
}

// Buckets returns the latest classification.
// GET /api/buckets
func (h *BoardHandler) Buckets(w http.ResponseWriter, r *http.Request) {
	if snap, ok := h.snapshot.Latest(); ok {
		writeJSON(w, http.StatusOK, snap)
		return
	}

	// First request can arrive before the poller's first pass.
	buckets, err := h.classifier.Classify(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "classify", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, classify.Snapshot{Buckets: buckets, GeneratedAt: time.Now()})
}

// Boards returns the personal boards for a dispatcher and a set of
// technicians. Without technician params every technician named on an
// active order gets a board.
// GET /api/boards?dispatcher=Maria&technician=Ion&technician=Radu
func (h *BoardHandler) Boards(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dispatcher := query.Get("dispatcher")
	technicians := query["technician"]

	boards, err := h.classifier.Boards(r.Context(), dispatcher, technicians)
	if err != nil {
		h.log.ErrorContext(r.Context(), "build boards", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, boards)
}
