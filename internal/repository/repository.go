package repository

import (
	"context"

	"github.com/swiftmart/checkout-api/internal/domain"
)

// OrderRepository persists confirmed orders. Implementations return
// *errors.ErrNotFound when an order id does not exist.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

// Repositories holds all repository implementations
type Repositories struct {
	Orders OrderRepository
}
