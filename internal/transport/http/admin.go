package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/peterkachezi/furniture-api/internal/domain"
)

// AdminOrderService is the minimal interface for the fulfillment-side order
// lists and counts.
type AdminOrderService interface {
	PendingOrders(ctx context.Context) ([]domain.Order, error)
	CompletedOrders(ctx context.Context) ([]domain.Order, error)
	PendingOrderCount(ctx context.Context) (int, error)
}

// HandlePendingOrders returns an HTTP handler listing orders awaiting
// fulfillment.
func HandlePendingOrders(svc AdminOrderService) http.HandlerFunc {
	return listOrdersHandler(func(ctx context.Context) ([]domain.Order, error) {
		return svc.PendingOrders(ctx)
	})
}

// HandleCompletedOrders returns an HTTP handler listing fulfilled orders.
func HandleCompletedOrders(svc AdminOrderService) http.HandlerFunc {
	return listOrdersHandler(func(ctx context.Context) ([]domain.Order, error) {
		return svc.CompletedOrders(ctx)
	})
}

// HandlePendingOrderCount returns an HTTP handler for the pending-order
// counter shown on the fulfillment dashboard.
func HandlePendingOrderCount(svc AdminOrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		count, err := svc.PendingOrderCount(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pendingCountResponse{PendingOrders: count})
	}
}

func listOrdersHandler(list func(ctx context.Context) ([]domain.Order, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		orders, err := list(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ordersToResponse(orders))
	}
}

type pendingCountResponse struct {
	PendingOrders int `json:"pending_orders"`
}
