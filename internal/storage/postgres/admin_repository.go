package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peterkachezi/furniture-api/internal/domain"
)

// AdminRepository serves the fulfillment-side read model and the completion
// update.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

const orderColumns = `id, customer_id, full_name, address, phone, total_cents, is_completed, placed_at`

func (r *AdminRepository) ListPendingOrders(ctx context.Context) ([]domain.Order, error) {
	const query = `
SELECT ` + orderColumns + `
FROM orders
WHERE is_completed = FALSE
ORDER BY placed_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *AdminRepository) ListCompletedOrders(ctx context.Context) ([]domain.Order, error) {
	const query = `
SELECT ` + orderColumns + `
FROM orders
WHERE is_completed = TRUE
ORDER BY placed_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list completed orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *AdminRepository) CountPendingOrders(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE is_completed = FALSE`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending orders: %w", err)
	}
	return count, nil
}

func (r *AdminRepository) SetOrderCompleted(ctx context.Context, orderID int64, completed bool) error {
	const stmt = `UPDATE orders SET is_completed = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, orderID, completed)
	if err != nil {
		return fmt.Errorf("set order completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
