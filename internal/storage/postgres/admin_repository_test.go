package postgres

import (
	"context"
	"testing"

	"github.com/peterkachezi/furniture-api/internal/domain"
	"github.com/peterkachezi/furniture-api/internal/testutil"
)

func TestAdminRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	orderRepo := NewOrderRepository(pool)
	repo := NewAdminRepository(pool)

	firstID, err := orderRepo.CreateOrder(ctx, placedOrder(7))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	secondID, err := orderRepo.CreateOrder(ctx, placedOrder(8))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	count, err := repo.CountPendingOrders(ctx)
	if err != nil {
		t.Fatalf("count pending: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 pending orders, got %d", count)
	}

	if err := repo.SetOrderCompleted(ctx, firstID, true); err != nil {
		t.Fatalf("set completed: %v", err)
	}

	pending, err := repo.ListPendingOrders(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != secondID {
		t.Fatalf("expected only order %d pending, got %+v", secondID, pending)
	}

	completed, err := repo.ListCompletedOrders(ctx)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != firstID {
		t.Fatalf("expected only order %d completed, got %+v", firstID, completed)
	}

	count, err = repo.CountPendingOrders(ctx)
	if err != nil {
		t.Fatalf("count pending: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 pending order, got %d", count)
	}

	if err := repo.SetOrderCompleted(ctx, 999999, true); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	// Marking an already-completed order again is an idempotent no-op.
	if err := repo.SetOrderCompleted(ctx, firstID, true); err != nil {
		t.Fatalf("expected idempotent set completed, got %v", err)
	}
}
