package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftmart/checkout-api/internal/catalog"
	"github.com/swiftmart/checkout-api/internal/domain"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

func testCatalog() catalog.Catalog {
	return catalog.NewStatic([]domain.Product{
		{ID: "1", Name: "Wireless Headphones", Price: 89.99, MaxQuantity: 10},
		{ID: "3", Name: "Bluetooth Speaker", Price: 49.99, MaxQuantity: 8},
	})
}

func newTestValidator() *Validator {
	return NewValidator(testCatalog(), 0.01)
}

func floatPtr(v float64) *float64 {
	return &v
}

func validShipping() *ShippingInfo {
	return &ShippingInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Address:   "1 Main St",
		City:      "Springfield",
		ZipCode:   "12345",
		Country:   "US",
	}
}

func validCardPayment() *PaymentInfo {
	return &PaymentInfo{
		Method:     "card",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/27",
		CardName:   "Jane Doe",
		CVV:        "123",
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, code, vErr.Code)
}

func TestValidateRequest_MissingSections(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		name string
		req  *Request
	}{
		{"empty cart", &Request{Cart: []CartLine{}, Shipping: validShipping(), Payment: validCardPayment()}},
		{"nil cart", &Request{Shipping: validShipping(), Payment: validCardPayment()}},
		{"missing shipping", &Request{Cart: []CartLine{{ID: "1", Quantity: floatPtr(1), Price: floatPtr(89.99)}}, Payment: validCardPayment()}},
		{"missing payment", &Request{Cart: []CartLine{{ID: "1", Quantity: floatPtr(1), Price: floatPtr(89.99)}}, Shipping: validShipping()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertCode(t, v.ValidateRequest(tc.req), CodeValidationError)
		})
	}
}

func TestValidateRequest_EmptyCartRejectedBeforeShipping(t *testing.T) {
	v := newTestValidator()

	// Shipping is invalid too, but the empty cart must win.
	req := &Request{
		Cart:     []CartLine{},
		Shipping: &ShippingInfo{Email: "invalid-email"},
		Payment:  validCardPayment(),
	}
	assertCode(t, v.ValidateRequest(req), CodeValidationError)
}

func TestValidateCart_LineChecks(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		name string
		line CartLine
		code string
	}{
		{"missing fields", CartLine{ID: "1"}, CodeValidationError},
		{"unknown product", CartLine{ID: "999", Quantity: floatPtr(1), Price: floatPtr(9.99)}, CodeUnknownProduct},
		{"zero quantity", CartLine{ID: "1", Quantity: floatPtr(0), Price: floatPtr(89.99)}, CodeInvalidQuantity},
		{"negative quantity", CartLine{ID: "1", Quantity: floatPtr(-2), Price: floatPtr(89.99)}, CodeInvalidQuantity},
		{"fractional quantity", CartLine{ID: "1", Quantity: floatPtr(1.5), Price: floatPtr(89.99)}, CodeInvalidQuantity},
		{"over max quantity", CartLine{ID: "1", Quantity: floatPtr(11), Price: floatPtr(89.99)}, CodeInsufficientStock},
		{"quantity beyond int range", CartLine{ID: "1", Quantity: floatPtr(1e20), Price: floatPtr(89.99)}, CodeInsufficientStock},
		{"price mismatch", CartLine{ID: "1", Quantity: floatPtr(1), Price: floatPtr(79.99)}, CodePriceMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertCode(t, v.ValidateCart([]CartLine{tc.line}), tc.code)
		})
	}
}

func TestValidateCart_PriceWithinTolerance(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateCart([]CartLine{
		{ID: "1", Quantity: floatPtr(2), Price: floatPtr(89.98)},
	})
	assert.NoError(t, err)
}

func TestValidateCart_ShortCircuitsOnFirstFailingLine(t *testing.T) {
	v := newTestValidator()

	// Second line would be INSUFFICIENT_STOCK, but the first line fails first.
	err := v.ValidateCart([]CartLine{
		{ID: "999", Quantity: floatPtr(1), Price: floatPtr(9.99)},
		{ID: "1", Quantity: floatPtr(99), Price: floatPtr(89.99)},
	})
	assertCode(t, err, CodeUnknownProduct)
}

func TestValidateShipping(t *testing.T) {
	v := newTestValidator()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateShipping(validShipping()))
	})

	t.Run("whitespace-only field is missing", func(t *testing.T) {
		s := validShipping()
		s.City = "   "
		assertCode(t, v.ValidateShipping(s), CodeMissingField)
	})

	t.Run("invalid email", func(t *testing.T) {
		s := validShipping()
		s.Email = "invalid-email"
		assertCode(t, v.ValidateShipping(s), CodeInvalidEmail)
	})

	t.Run("invalid zip", func(t *testing.T) {
		s := validShipping()
		s.ZipCode = "1234"
		assertCode(t, v.ValidateShipping(s), CodeInvalidZip)
	})

	t.Run("zip+4 accepted", func(t *testing.T) {
		s := validShipping()
		s.ZipCode = "12345-6789"
		assert.NoError(t, v.ValidateShipping(s))
	})

	t.Run("state is optional", func(t *testing.T) {
		s := validShipping()
		s.State = ""
		assert.NoError(t, v.ValidateShipping(s))
	})
}

func TestValidatePayment_Card(t *testing.T) {
	v := newTestValidator()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.ValidatePayment(validCardPayment()))
	})

	t.Run("card number with spaces accepted", func(t *testing.T) {
		p := validCardPayment()
		p.CardNumber = "4242 4242 4242 4242"
		assert.NoError(t, v.ValidatePayment(p))
	})

	t.Run("10-digit card rejected", func(t *testing.T) {
		p := validCardPayment()
		p.CardNumber = "4242424242"
		assertCode(t, v.ValidatePayment(p), CodeInvalidCard)
	})

	t.Run("20-digit card rejected", func(t *testing.T) {
		p := validCardPayment()
		p.CardNumber = "42424242424242424242"
		assertCode(t, v.ValidatePayment(p), CodeInvalidCard)
	})

	t.Run("missing cvv", func(t *testing.T) {
		p := validCardPayment()
		p.CVV = ""
		assertCode(t, v.ValidatePayment(p), CodeMissingField)
	})

	t.Run("bad expiry month", func(t *testing.T) {
		p := validCardPayment()
		p.ExpiryDate = "13/27"
		assertCode(t, v.ValidatePayment(p), CodeInvalidExpiry)
	})

	t.Run("bad expiry format", func(t *testing.T) {
		p := validCardPayment()
		p.ExpiryDate = "2027-12"
		assertCode(t, v.ValidatePayment(p), CodeInvalidExpiry)
	})

	t.Run("bad cvv", func(t *testing.T) {
		p := validCardPayment()
		p.CVV = "12"
		assertCode(t, v.ValidatePayment(p), CodeInvalidCVV)
	})

	t.Run("4-digit cvv accepted", func(t *testing.T) {
		p := validCardPayment()
		p.CVV = "1234"
		assert.NoError(t, v.ValidatePayment(p))
	})
}

func TestValidatePayment_PayPal(t *testing.T) {
	v := newTestValidator()

	t.Run("valid", func(t *testing.T) {
		err := v.ValidatePayment(&PaymentInfo{Method: "paypal", PayPalEmail: "jane@example.com"})
		assert.NoError(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		err := v.ValidatePayment(&PaymentInfo{Method: "paypal", PayPalEmail: "not-an-email"})
		assertCode(t, err, CodeInvalidPayPalEmail)
	})
}

func TestValidatePayment_UnsupportedMethod(t *testing.T) {
	v := newTestValidator()

	err := v.ValidatePayment(&PaymentInfo{Method: "bitcoin"})
	assertCode(t, err, CodeUnsupportedPaymentMethod)
}
