package memory

import (
	"context"
	"sync"

	"github.com/swiftmart/checkout-api/internal/domain"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

// orderRepository is the default in-memory order store. Orders are copied on
// the way in and out so callers can't mutate stored state.
type orderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

// NewOrderRepository creates an empty in-memory order repository
func NewOrderRepository() *orderRepository {
	return &orderRepository{
		orders: make(map[string]domain.Order),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	r.orders[order.ID] = stored
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	out := stored
	out.Items = append([]domain.OrderItem(nil), stored.Items...)
	return &out, nil
}
