package catalog

import "github.com/swiftmart/checkout-api/internal/domain"

// Catalog is a read-only product lookup. Implementations must be safe for
// concurrent use; the validator holds one for the lifetime of the service.
type Catalog interface {
	Get(id string) (*domain.Product, bool)
}

type static struct {
	products map[string]domain.Product
}

// NewStatic builds an immutable in-memory catalog from the given products.
// The input slice is copied, so callers can't mutate the catalog afterwards.
func NewStatic(products []domain.Product) Catalog {
	m := make(map[string]domain.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &static{products: m}
}

func (c *static) Get(id string) (*domain.Product, bool) {
	p, ok := c.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Default returns the built-in product table the service ships with.
func Default() Catalog {
	return NewStatic([]domain.Product{
		{ID: "1", Name: "Wireless Headphones", Price: 89.99, MaxQuantity: 10},
		{ID: "2", Name: "Smart Watch", Price: 199.99, MaxQuantity: 5},
		{ID: "3", Name: "Bluetooth Speaker", Price: 49.99, MaxQuantity: 8},
		{ID: "4", Name: "Phone Case", Price: 19.99, MaxQuantity: 20},
		{ID: "5", Name: "USB-C Cable", Price: 12.99, MaxQuantity: 15},
	})
}
