package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/peterkachezi/furniture-api/internal/app"
	"github.com/peterkachezi/furniture-api/internal/domain"
)

// OrderPlacer is the minimal interface needed to place an order.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in app.PlaceOrderInput) (app.PlaceOrderResult, error)
}

// HandlePlaceOrder returns an HTTP handler for the checkout POST.
func HandlePlaceOrder(svc OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req placeOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.PlaceOrder(r.Context(), app.PlaceOrderInput{
			CustomerID: req.CustomerID,
			FullName:   req.FullName,
			Address:    req.Address,
			Phone:      req.Phone,
			TotalCents: req.TotalCents,
		})
		if err != nil {
			switch err {
			case domain.ErrCustomerIDRequired:
				writeError(w, http.StatusBadRequest, codeCustomerIDRequired, err.Error())
			case domain.ErrFullNameRequired:
				writeError(w, http.StatusBadRequest, codeFullNameRequired, err.Error())
			case domain.ErrAddressRequired:
				writeError(w, http.StatusBadRequest, codeAddressRequired, err.Error())
			case domain.ErrPhoneRequired:
				writeError(w, http.StatusBadRequest, codePhoneRequired, err.Error())
			case domain.ErrInvalidTotal:
				writeError(w, http.StatusBadRequest, codeInvalidTotal, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := placeOrderResponse{
			OrderID:  res.OrderID,
			PlacedAt: res.PlacedAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// OrderReader is the minimal interface for the per-order detail read model.
type OrderReader interface {
	OrderDetails(ctx context.Context, orderID int64) ([]domain.OrderDetail, error)
}

// OrderCompleter is the minimal interface for flipping an order's completion
// flag.
type OrderCompleter interface {
	MarkOrderComplete(ctx context.Context, orderID int64, completed bool) error
}

// HandleOrderByID dispatches /orders/{id}/details (GET) and
// /orders/{id}/complete (PUT).
func HandleOrderByID(reader OrderReader, completer OrderCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, action, ok := parseOrderPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch action {
		case "details":
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			details, err := reader.OrderDetails(r.Context(), orderID)
			if err != nil {
				switch err {
				case domain.ErrInvalidID:
					writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			resp := make([]orderDetailResponse, 0, len(details))
			for _, d := range details {
				resp = append(resp, orderDetailResponse{
					ID:                d.ID,
					Qty:               d.Qty,
					SubtotalCents:     d.SubtotalCents,
					ProductName:       d.ProductName,
					ProductPriceCents: d.ProductPrice,
				})
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		case "complete":
			if r.Method != http.MethodPut {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			completed := true
			if r.Body != nil && r.ContentLength != 0 {
				var req completeOrderRequest
				dec := json.NewDecoder(r.Body)
				dec.DisallowUnknownFields()
				if err := dec.Decode(&req); err != nil {
					writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
					return
				}
				if req.IsCompleted != nil {
					completed = *req.IsCompleted
				}
			}
			if err := completer.MarkOrderComplete(r.Context(), orderID, completed); err != nil {
				switch err {
				case domain.ErrOrderNotFound:
					writeError(w, http.StatusNotFound, codeOrderNotFound, err.Error())
				case domain.ErrInvalidID:
					writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			resp := completeOrderResponse{ID: orderID, IsCompleted: completed}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

// CustomerOrderLister is the minimal interface for a customer's order history.
type CustomerOrderLister interface {
	OrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}

// HandleCustomerOrders returns an HTTP handler for
// /customers/{id}/orders (GET), newest order first.
func HandleCustomerOrders(svc CustomerOrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		customerID, ok := parseCustomerOrdersPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		orders, err := svc.OrdersByCustomer(r.Context(), customerID)
		if err != nil {
			switch err {
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ordersToResponse(orders))
	}
}

func parseOrderPath(path string) (int64, string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "orders" {
		return 0, "", false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	return id, parts[2], true
}

func parseCustomerOrdersPath(path string) (int64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "customers" || parts[2] != "orders" {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type placeOrderRequest struct {
	CustomerID int64  `json:"customer_id"`
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	TotalCents int64  `json:"total_cents"`
	// Accepted but ignored: the server decides both.
	IsCompleted json.RawMessage `json:"is_completed"`
	PlacedAt    json.RawMessage `json:"placed_at"`
}

type placeOrderResponse struct {
	OrderID  int64     `json:"order_id"`
	PlacedAt time.Time `json:"placed_at"`
}

type completeOrderRequest struct {
	IsCompleted *bool `json:"is_completed"`
}

type completeOrderResponse struct {
	ID          int64 `json:"id"`
	IsCompleted bool  `json:"is_completed"`
}

type orderDetailResponse struct {
	ID                int64  `json:"id"`
	Qty               int    `json:"qty"`
	SubtotalCents     int64  `json:"subtotal_cents"`
	ProductName       string `json:"product_name"`
	ProductPriceCents int64  `json:"product_price_cents"`
}

type orderResponse struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	FullName    string    `json:"full_name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	TotalCents  int64     `json:"total_cents"`
	IsCompleted bool      `json:"is_completed"`
	PlacedAt    time.Time `json:"placed_at"`
}

func ordersToResponse(orders []domain.Order) []orderResponse {
	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderResponse{
			ID:          o.ID,
			CustomerID:  o.CustomerID,
			FullName:    o.FullName,
			Address:     o.Address,
			Phone:       o.Phone,
			TotalCents:  o.TotalCents,
			IsCompleted: o.Completed,
			PlacedAt:    o.PlacedAt,
		})
	}
	return resp
}
