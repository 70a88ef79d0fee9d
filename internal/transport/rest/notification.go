package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fieldops/workboard-backend/internal/domain"
)

type notifierService interface {
	Summarize(ctx context.Context) (domain.NotificationSummary, error)
}

// NotificationHandler serves the aggregated notification counts.
type NotificationHandler struct {
	notifier notifierService
	log      *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notifier notifierService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		log:      logger.With("handler", "notification"),
	}
}

// Summary returns the current notification summary.
// GET /api/notifications
func (h *NotificationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.notifier.Summarize(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "summarize", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
