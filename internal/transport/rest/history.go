package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fieldops/workboard-backend/internal/domain"
)

// defaultHistoryWindow bounds how far back the history read goes when
// the client does not ask for a specific window.
const defaultHistoryWindow = 30 * 24 * time.Hour

type trackerService interface {
	History(ctx context.Context, workOrderID uuid.UUID, window time.Duration) ([]domain.ModificationEvent, error)
	MarkRead(ctx context.Context, eventID uuid.UUID) error
}

// HistoryHandler serves the modification-log read-back endpoints.
type HistoryHandler struct {
	tracker trackerService
	log     *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(tracker trackerService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		tracker: tracker,
		log:     logger.With("handler", "history"),
	}
}

// eventResponse is the JSON form of one modification event.
type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	WorkOrderID uuid.UUID `json:"work_order_id"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	ActorName   string    `json:"actor_name,omitempty"`
	OldValue    string    `json:"old_value,omitempty"`
	NewValue    string    `json:"new_value,omitempty"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	OccurredAt  time.Time `json:"occurred_at"`
	Read        bool      `json:"read"`
}

// List returns the recent change history of one work order.
// GET /api/workorders/{id}/history?window=168h
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid work order id")
		return
	}

	window := defaultHistoryWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			writeError(w, http.StatusBadRequest, "invalid window")
			return
		}
		window = d
	}

	events, err := h.tracker.History(r.Context(), orderID, window)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list history", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, eventResponse{
			ID:          ev.ID,
			WorkOrderID: ev.WorkOrderID,
			Title:       ev.Title,
			Kind:        ev.Kind.String(),
			ActorName:   ev.ActorName,
			OldValue:    ev.OldValue,
			NewValue:    ev.NewValue,
			Description: ev.Description,
			Priority:    ev.Priority.String(),
			OccurredAt:  ev.OccurredAt,
			Read:        ev.Read,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// MarkRead flags one event as seen.
// POST /api/workorders/{id}/history/{eventID}/read
func (h *HistoryHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(r.PathValue("eventID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := h.tracker.MarkRead(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		h.log.ErrorContext(r.Context(), "mark read", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
