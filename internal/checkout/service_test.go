package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swiftmart/checkout-api/internal/domain"
	"github.com/swiftmart/checkout-api/internal/repository"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

type fakeCharger struct {
	err     error
	calls   int
	lastPay *PaymentInfo
}

func (f *fakeCharger) Charge(ctx context.Context, payment *PaymentInfo, amount float64) (string, error) {
	f.calls++
	f.lastPay = payment
	if f.err != nil {
		return "", f.err
	}
	return "TXN-test", nil
}

type fakeOrderRepo struct {
	created   []*domain.Order
	createErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return nil, &errors.ErrNotFound{Resource: "order", ID: id}
}

func newTestService(charger Charger, repo repository.OrderRepository) *Service {
	cat := testCatalog()
	return NewService(
		cat,
		NewValidator(cat, 0.01),
		NewCalculator(defaultPricing()),
		NewAssemblerWithSource(rand.New(rand.NewSource(1)), func() time.Time {
			return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		}),
		charger,
		&repository.Repositories{Orders: repo},
		zap.NewNop(),
	)
}

func validRequest() *Request {
	return &Request{
		Cart: []CartLine{
			{ID: "1", Quantity: floatPtr(2), Price: floatPtr(89.99)},
			{ID: "3", Quantity: floatPtr(1), Price: floatPtr(49.99)},
		},
		Shipping: validShipping(),
		Payment:  validCardPayment(),
	}
}

func TestCheckout_Success(t *testing.T) {
	charger := &fakeCharger{}
	repo := &fakeOrderRepo{}
	svc := newTestService(charger, repo)

	order, err := svc.Checkout(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "TXN-test", order.TransactionID)
	assert.Equal(t, 229.97, order.Totals.Subtotal)
	assert.Equal(t, 0.0, order.Totals.Shipping)
	assert.Equal(t, 18.40, order.Totals.Tax)
	assert.Equal(t, 248.37, order.Totals.Total)
	assert.Equal(t, 1, charger.calls)
	require.NotNil(t, charger.lastPay)
	assert.Equal(t, "card", charger.lastPay.Method)
	assert.Equal(t, "4242424242424242", charger.lastPay.CardNumber)

	require.Len(t, repo.created, 1)
	assert.Equal(t, order.ID, repo.created[0].ID)
}

func TestCheckout_ValidationFailureSkipsCharge(t *testing.T) {
	charger := &fakeCharger{}
	repo := &fakeOrderRepo{}
	svc := newTestService(charger, repo)

	req := validRequest()
	req.Cart[0].Price = floatPtr(1.00)

	_, err := svc.Checkout(context.Background(), req)

	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, CodePriceMismatch, vErr.Code)
	assert.Zero(t, charger.calls)
	assert.Empty(t, repo.created)
}

func TestCheckout_PaymentDeclined(t *testing.T) {
	charger := &fakeCharger{err: &errors.ErrPaymentDeclined{Reason: "declined"}}
	repo := &fakeOrderRepo{}
	svc := newTestService(charger, repo)

	_, err := svc.Checkout(context.Background(), validRequest())

	var declined *errors.ErrPaymentDeclined
	require.ErrorAs(t, err, &declined)
	assert.Equal(t, "declined", declined.Reason)
	assert.Empty(t, repo.created)
}

func TestCheckout_ChargerFailurePropagates(t *testing.T) {
	charger := &fakeCharger{err: fmt.Errorf("gateway timeout")}
	repo := &fakeOrderRepo{}
	svc := newTestService(charger, repo)

	_, err := svc.Checkout(context.Background(), validRequest())
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestCheckout_PersistFailureDoesNotFailRequest(t *testing.T) {
	charger := &fakeCharger{}
	repo := &fakeOrderRepo{createErr: fmt.Errorf("db down")}
	svc := newTestService(charger, repo)

	order, err := svc.Checkout(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
}

func TestCheckout_PayPal(t *testing.T) {
	charger := &fakeCharger{}
	repo := &fakeOrderRepo{}
	svc := newTestService(charger, repo)

	req := validRequest()
	req.Payment = &PaymentInfo{Method: "paypal", PayPalEmail: "jane@example.com"}

	order, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodPayPal, order.PaymentMethod)
}
