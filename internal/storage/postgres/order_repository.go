package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peterkachezi/furniture-api/internal/domain"
)

// OrderRepository covers order placement: the order row, its lines, and the
// cart lines the placement consumes.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	const stmt = `
INSERT INTO orders (customer_id, full_name, address, phone, total_cents, is_completed, placed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	var id int64
	err := r.queryRow(ctx, stmt,
		order.CustomerID, order.FullName, order.Address, order.Phone,
		order.TotalCents, order.Completed, order.PlacedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

func (r *OrderRepository) CreateOrderLines(ctx context.Context, lines []domain.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	const stmt = `
INSERT INTO order_items (order_id, product_id, price_cents, qty, subtotal_cents)
VALUES ($1, $2, $3, $4, $5)`

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(stmt, line.OrderID, line.ProductID, line.PriceCents, line.Qty, line.SubtotalCents)
	}

	results := r.sendBatch(ctx, batch)
	defer func() { _ = results.Close() }()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("create order lines: %w", err)
		}
	}
	return nil
}

func (r *OrderRepository) ListCartLines(ctx context.Context, customerID int64) ([]domain.CartLine, error) {
	const query = `
SELECT id, customer_id, product_id, price_cents, qty, subtotal_cents
FROM cart_items
WHERE customer_id = $1
ORDER BY id`

	rows, err := r.query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ID, &line.CustomerID, &line.ProductID, &line.PriceCents, &line.Qty, &line.SubtotalCents); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, line)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate cart lines: %w", rows.Err())
	}
	return lines, nil
}

func (r *OrderRepository) DeleteCartLines(ctx context.Context, customerID int64) error {
	const stmt = `DELETE FROM cart_items WHERE customer_id = $1`

	if _, err := r.exec(ctx, stmt, customerID); err != nil {
		return fmt.Errorf("delete cart lines: %w", err)
	}
	return nil
}

func (r *OrderRepository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	const query = `
SELECT id, customer_id, full_name, address, phone, total_cents, is_completed, placed_at
FROM orders
WHERE customer_id = $1
ORDER BY placed_at DESC`

	rows, err := r.query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *OrderRepository) ListOrderDetails(ctx context.Context, orderID int64) ([]domain.OrderDetail, error) {
	const query = `
SELECT oi.id, oi.qty, oi.subtotal_cents, p.name, p.price_cents
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY oi.id`

	rows, err := r.query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()

	var details []domain.OrderDetail
	for rows.Next() {
		var d domain.OrderDetail
		if err := rows.Scan(&d.ID, &d.Qty, &d.SubtotalCents, &d.ProductName, &d.ProductPrice); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		details = append(details, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate order details: %w", rows.Err())
	}
	return details, nil
}

func (r *OrderRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *OrderRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *OrderRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *OrderRepository) sendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults {
	if tx := txFromContext(ctx); tx != nil {
		return tx.SendBatch(ctx, batch)
	}
	return r.pool.SendBatch(ctx, batch)
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.FullName, &o.Address, &o.Phone, &o.TotalCents, &o.Completed, &o.PlacedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate orders: %w", rows.Err())
	}
	return orders, nil
}
