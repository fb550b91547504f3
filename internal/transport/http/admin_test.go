package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/peterkachezi/furniture-api/internal/domain"
)

type fakeAdminOrderService struct {
	pending   []domain.Order
	completed []domain.Order
	count     int
	err       error
}

func (f *fakeAdminOrderService) PendingOrders(_ context.Context) ([]domain.Order, error) {
	return f.pending, f.err
}

func (f *fakeAdminOrderService) CompletedOrders(_ context.Context) ([]domain.Order, error) {
	return f.completed, f.err
}

func (f *fakeAdminOrderService) PendingOrderCount(_ context.Context) (int, error) {
	return f.count, f.err
}

func TestAdminOrderHandlers(t *testing.T) {
	t.Parallel()

	placedAt := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

	t.Run("pending orders listed", func(t *testing.T) {
		svc := &fakeAdminOrderService{pending: []domain.Order{
			{ID: 1, CustomerID: 7, FullName: "Jane", PlacedAt: placedAt},
		}}
		handler := HandlePendingOrders(svc)

		req := httptest.NewRequest(http.MethodGet, "/orders/pending", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp []orderResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 1 || resp[0].IsCompleted {
			t.Fatalf("unexpected pending response: %+v", resp)
		}
	})

	t.Run("completed orders listed", func(t *testing.T) {
		svc := &fakeAdminOrderService{completed: []domain.Order{
			{ID: 2, CustomerID: 7, FullName: "Jane", Completed: true, PlacedAt: placedAt},
		}}
		handler := HandleCompletedOrders(svc)

		req := httptest.NewRequest(http.MethodGet, "/orders/completed", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp []orderResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 1 || !resp[0].IsCompleted {
			t.Fatalf("unexpected completed response: %+v", resp)
		}
	})

	t.Run("pending count returned", func(t *testing.T) {
		handler := HandlePendingOrderCount(&fakeAdminOrderService{count: 3})

		req := httptest.NewRequest(http.MethodGet, "/orders/count", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp pendingCountResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.PendingOrders != 3 {
			t.Fatalf("expected 3 pending orders, got %d", resp.PendingOrders)
		}
	})

	t.Run("wrong method rejected", func(t *testing.T) {
		handler := HandlePendingOrders(&fakeAdminOrderService{})

		req := httptest.NewRequest(http.MethodPost, "/orders/pending", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected status 405, got %d", rec.Code)
		}
	})
}
