package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/peterkachezi/furniture-api/internal/clock"
	"github.com/peterkachezi/furniture-api/internal/domain"
	"github.com/peterkachezi/furniture-api/internal/phone"
	"github.com/peterkachezi/furniture-api/internal/sms"
)

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateOrder(ctx context.Context, order domain.Order) (int64, error)
	CreateOrderLines(ctx context.Context, lines []domain.OrderLine) error
	ListCartLines(ctx context.Context, customerID int64) ([]domain.CartLine, error)
	DeleteCartLines(ctx context.Context, customerID int64) error
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListOrderDetails(ctx context.Context, orderID int64) ([]domain.OrderDetail, error)
}

// Notifier sends the customer-facing order confirmation. Implemented by the
// sms gateway client; faked in tests.
type Notifier interface {
	Send(ctx context.Context, n sms.Notification) error
}

type OrderService struct {
	repo     OrderRepository
	notifier Notifier
	clock    clock.Clock
	logger   *zap.Logger
}

func NewOrderService(repo OrderRepository, notifier Notifier, clk clock.Clock, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

type PlaceOrderInput struct {
	CustomerID int64
	FullName   string
	Address    string
	Phone      string
	TotalCents int64
}

type PlaceOrderResult struct {
	OrderID  int64
	PlacedAt time.Time
}

// PlaceOrder converts the customer's current cart into an immutable order.
//
// The order row and its lines are written in one transaction. The
// confirmation SMS is attempted after commit and is never allowed to fail the
// placement. Cart cleanup runs last, regardless of the notification outcome.
//
// Two concurrent placements by the same customer are not serialized: both may
// snapshot the same cart before either clears it. The storefront accepts that
// race; see DESIGN.md.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResult, error) {
	if in.CustomerID <= 0 {
		return PlaceOrderResult{}, domain.ErrCustomerIDRequired
	}
	if in.FullName == "" {
		return PlaceOrderResult{}, domain.ErrFullNameRequired
	}
	if in.Address == "" {
		return PlaceOrderResult{}, domain.ErrAddressRequired
	}
	if in.Phone == "" {
		return PlaceOrderResult{}, domain.ErrPhoneRequired
	}
	if in.TotalCents < 0 {
		return PlaceOrderResult{}, domain.ErrInvalidTotal
	}

	// Placement time and completion state come from the server, never the
	// client.
	now := s.clock.Now()
	order := domain.Order{
		CustomerID: in.CustomerID,
		FullName:   in.FullName,
		Address:    in.Address,
		Phone:      in.Phone,
		TotalCents: in.TotalCents,
		Completed:  false,
		PlacedAt:   now,
	}

	var orderID int64
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		id, err := s.repo.CreateOrder(txCtx, order)
		if err != nil {
			return err
		}

		cartLines, err := s.repo.ListCartLines(txCtx, in.CustomerID)
		if err != nil {
			return err
		}

		// An empty cart is a valid placement: zero lines, no error.
		lines := domain.SnapshotCart(id, cartLines)
		if len(lines) > 0 {
			if err := s.repo.CreateOrderLines(txCtx, lines); err != nil {
				return err
			}
		}

		orderID = id
		return nil
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}

	notification := sms.Notification{
		FullName: in.FullName,
		Phone:    phone.Normalize(in.Phone),
		OrderID:  orderID,
	}
	if err := s.notifier.Send(ctx, notification); err != nil {
		// The order is already committed; a missed SMS never undoes it.
		s.logger.Warn("order confirmation sms failed",
			zap.Int64("order_id", orderID),
			zap.Int64("customer_id", in.CustomerID),
			zap.Error(err),
		)
	}

	if err := s.repo.DeleteCartLines(ctx, in.CustomerID); err != nil {
		return PlaceOrderResult{}, fmt.Errorf("clear cart: %w", err)
	}

	return PlaceOrderResult{OrderID: orderID, PlacedAt: now}, nil
}

// OrdersByCustomer lists a customer's orders, newest first.
func (s *OrderService) OrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if customerID <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListOrdersByCustomer(ctx, customerID)
}

// OrderDetails lists the line detail for one order joined with current
// product data. An unknown order id yields an empty list.
func (s *OrderService) OrderDetails(ctx context.Context, orderID int64) ([]domain.OrderDetail, error) {
	if orderID <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListOrderDetails(ctx, orderID)
}
