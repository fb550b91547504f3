package app

import (
	"context"

	"github.com/peterkachezi/furniture-api/internal/domain"
)

type AdminRepository interface {
	ListPendingOrders(ctx context.Context) ([]domain.Order, error)
	ListCompletedOrders(ctx context.Context) ([]domain.Order, error)
	CountPendingOrders(ctx context.Context) (int, error)
	SetOrderCompleted(ctx context.Context, orderID int64, completed bool) error
}

// AdminService serves the fulfillment-side read model and the completion
// flip, the only mutation allowed on a placed order.
type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) PendingOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListPendingOrders(ctx)
}

func (s *AdminService) CompletedOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListCompletedOrders(ctx)
}

func (s *AdminService) PendingOrderCount(ctx context.Context) (int, error) {
	return s.repo.CountPendingOrders(ctx)
}

// MarkOrderComplete flips the completion flag. Unknown order ids surface as
// domain.ErrOrderNotFound with no side effects.
func (s *AdminService) MarkOrderComplete(ctx context.Context, orderID int64, completed bool) error {
	if orderID <= 0 {
		return domain.ErrInvalidID
	}
	return s.repo.SetOrderCompleted(ctx, orderID, completed)
}
