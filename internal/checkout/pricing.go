package checkout

import (
	"math"

	"github.com/swiftmart/checkout-api/internal/catalog"
	"github.com/swiftmart/checkout-api/internal/config"
	"github.com/swiftmart/checkout-api/internal/domain"
)

// Calculator computes order totals from catalog prices. Client-claimed
// prices never enter the computation.
type Calculator struct {
	cfg config.PricingConfig
}

// NewCalculator creates a calculator with the given pricing constants.
func NewCalculator(cfg config.PricingConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Price turns validated cart lines into priced order items and totals.
// The cart must already have passed ValidateCart against the same catalog.
// Every monetary component is rounded to 2 decimal places independently
// before being summed, so the components always add up exactly.
func (c *Calculator) Price(cart []CartLine, cat catalog.Catalog) ([]domain.OrderItem, domain.Totals) {
	items := make([]domain.OrderItem, 0, len(cart))
	var subtotal float64

	for _, line := range cart {
		product, ok := cat.Get(line.ID)
		if !ok {
			// A substituted catalog may have lost the product between
			// validation and pricing; never price a line blind.
			continue
		}
		qty := int(*line.Quantity)
		lineTotal := round2(product.Price * float64(qty))
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  qty,
			Total:     lineTotal,
		})
		subtotal += lineTotal
	}
	subtotal = round2(subtotal)

	shipping := c.cfg.ShippingFlatFee
	if subtotal >= c.cfg.FreeShippingThreshold {
		shipping = 0
	}
	shipping = round2(shipping)

	tax := round2(subtotal * c.cfg.TaxRate)
	total := round2(subtotal + shipping + tax)

	return items, domain.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
