package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldops/workboard-backend/internal/domain"
)

type notifierMock struct {
	SummarizeFunc func(ctx context.Context) (domain.NotificationSummary, error)
}

func (m *notifierMock) Summarize(ctx context.Context) (domain.NotificationSummary, error) {
	return m.SummarizeFunc(ctx)
}

func TestNotificationSummary(t *testing.T) {
	t.Parallel()

	mock := &notifierMock{
		SummarizeFunc: func(ctx context.Context) (domain.NotificationSummary, error) {
			return domain.NotificationSummary{
				Categories: []domain.CategoryCount{
					{Category: domain.CategoryUnassigned, Count: 3, Priority: domain.PriorityHigh},
					{Category: domain.CategoryPostponed, Count: 1, Priority: domain.PriorityMedium},
				},
				TotalCount:    4,
				CriticalCount: 3,
			}, nil
		},
	}

	h := NewNotificationHandler(mock, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp domain.NotificationSummary
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalCount != 4 {
		t.Errorf("total: got %d, want 4", resp.TotalCount)
	}
	if resp.CriticalCount != 3 {
		t.Errorf("critical: got %d, want 3", resp.CriticalCount)
	}
	if len(resp.Categories) != 2 {
		t.Errorf("categories: got %d, want 2", len(resp.Categories))
	}
}

func TestNotificationSummary_Error500(t *testing.T) {
	t.Parallel()

	mock := &notifierMock{
		SummarizeFunc: func(ctx context.Context) (domain.NotificationSummary, error) {
			return domain.NotificationSummary{}, errors.New("db down")
		},
	}

	h := NewNotificationHandler(mock, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
