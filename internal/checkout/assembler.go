package checkout

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/swiftmart/checkout-api/internal/domain"
)

// Assembler builds confirmed Order records. Order ids and tracking numbers
// are best-effort unique: wall-clock date plus a bounded random suffix.
type Assembler struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewAssembler creates an assembler seeded from the wall clock.
func NewAssembler() *Assembler {
	return NewAssemblerWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewAssemblerWithSource creates an assembler with explicit random and time
// sources so tests can fix outcomes.
func NewAssemblerWithSource(rng *rand.Rand, now func() time.Time) *Assembler {
	return &Assembler{rng: rng, now: now}
}

// Assemble builds the Order from validated inputs and computed totals.
// Shipping and line-item data are copied verbatim; names and per-line totals
// come from the catalog via the calculator.
func (a *Assembler) Assemble(shipping *ShippingInfo, method domain.PaymentMethod, items []domain.OrderItem, totals domain.Totals, transactionID string) *domain.Order {
	a.mu.Lock()
	orderSuffix := a.rng.Intn(1000000)
	trackingSuffix := a.rng.Intn(1000000000)
	a.mu.Unlock()

	now := a.now()
	datePart := now.Format("20060102")

	return &domain.Order{
		ID:             fmt.Sprintf("ORD-%s-%06d", datePart, orderSuffix),
		TrackingNumber: fmt.Sprintf("TRK-%s-%09d", datePart, trackingSuffix),
		Status:         domain.OrderStatusConfirmed,
		OrderDate:      now,
		Customer: domain.Customer{
			Name:  strings.TrimSpace(shipping.FirstName) + " " + strings.TrimSpace(shipping.LastName),
			Email: strings.TrimSpace(shipping.Email),
		},
		Shipping: domain.ShippingAddress{
			FirstName: strings.TrimSpace(shipping.FirstName),
			LastName:  strings.TrimSpace(shipping.LastName),
			Address:   strings.TrimSpace(shipping.Address),
			City:      strings.TrimSpace(shipping.City),
			State:     strings.TrimSpace(shipping.State),
			ZipCode:   strings.TrimSpace(shipping.ZipCode),
			Country:   strings.TrimSpace(shipping.Country),
		},
		Items:         items,
		Totals:        totals,
		PaymentMethod: method,
		TransactionID: transactionID,
		CreatedAt:     now,
	}
}
