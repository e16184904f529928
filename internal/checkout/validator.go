package checkout

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/swiftmart/checkout-api/internal/catalog"
	"github.com/swiftmart/checkout-api/internal/domain"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

// Machine-distinguishable validation reason codes
const (
	CodeValidationError          = "VALIDATION_ERROR"
	CodeUnknownProduct           = "UNKNOWN_PRODUCT"
	CodeInvalidQuantity          = "INVALID_QUANTITY"
	CodeInsufficientStock        = "INSUFFICIENT_STOCK"
	CodePriceMismatch            = "PRICE_MISMATCH"
	CodeMissingField             = "MISSING_FIELD"
	CodeInvalidEmail             = "INVALID_EMAIL"
	CodeInvalidZip               = "INVALID_ZIP"
	CodeInvalidCard              = "INVALID_CARD"
	CodeInvalidExpiry            = "INVALID_EXPIRY"
	CodeInvalidCVV               = "INVALID_CVV"
	CodeInvalidPayPalEmail       = "INVALID_PAYPAL_EMAIL"
	CodeUnsupportedPaymentMethod = "UNSUPPORTED_PAYMENT_METHOD"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipPattern    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cardPattern   = regexp.MustCompile(`^\d{13,19}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Validator checks a checkout request against the catalog and the format
// rules. It holds no per-request state and is safe for concurrent use.
type Validator struct {
	catalog        catalog.Catalog
	priceTolerance float64
}

// NewValidator creates a validator over an immutable catalog. Tolerance is
// the maximum absolute difference allowed between the client-claimed price
// and the catalog price.
func NewValidator(cat catalog.Catalog, priceTolerance float64) *Validator {
	return &Validator{
		catalog:        cat,
		priceTolerance: priceTolerance,
	}
}

// ValidateRequest runs every check in order: request shape, cart lines,
// shipping, then payment. It returns on the first failure; the error is
// always a *errors.ErrValidation carrying a reason code.
func (v *Validator) ValidateRequest(req *Request) error {
	if len(req.Cart) == 0 || req.Shipping == nil || req.Payment == nil {
		return &errors.ErrValidation{
			Code:    CodeValidationError,
			Message: "cart, shipping and payment are required",
		}
	}
	if err := v.ValidateCart(req.Cart); err != nil {
		return err
	}
	if err := v.ValidateShipping(req.Shipping); err != nil {
		return err
	}
	return v.ValidatePayment(req.Payment)
}

// ValidateCart checks each line against the catalog in input order and
// short-circuits on the first failing line.
func (v *Validator) ValidateCart(cart []CartLine) error {
	for _, line := range cart {
		if line.ID == "" || line.Quantity == nil || line.Price == nil {
			return &errors.ErrValidation{
				Code:    CodeValidationError,
				Message: "each cart item requires id, quantity and price",
			}
		}

		product, ok := v.catalog.Get(line.ID)
		if !ok {
			return &errors.ErrValidation{
				Code:    CodeUnknownProduct,
				Message: fmt.Sprintf("product %s not found", line.ID),
			}
		}

		qty := *line.Quantity
		if qty <= 0 || qty != math.Trunc(qty) {
			return &errors.ErrValidation{
				Code:    CodeInvalidQuantity,
				Message: fmt.Sprintf("quantity for %s must be a positive integer", product.Name),
			}
		}
		// Compare in float space: converting first would wrap quantities
		// beyond int range and dodge the check.
		if qty > float64(product.MaxQuantity) {
			return &errors.ErrValidation{
				Code:    CodeInsufficientStock,
				Message: fmt.Sprintf("only %d units of %s available per order", product.MaxQuantity, product.Name),
			}
		}

		// Sole anti-tampering control: the claimed price must match the
		// catalog within the configured absolute tolerance.
		if math.Abs(*line.Price-product.Price) > v.priceTolerance {
			return &errors.ErrValidation{
				Code:    CodePriceMismatch,
				Message: fmt.Sprintf("price for %s does not match the catalog", product.Name),
			}
		}
	}
	return nil
}

// ValidateShipping checks required fields, then the email and zip formats.
func (v *Validator) ValidateShipping(s *ShippingInfo) error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"address", s.Address},
		{"city", s.City},
		{"zipCode", s.ZipCode},
		{"country", s.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &errors.ErrValidation{
				Code:    CodeMissingField,
				Message: fmt.Sprintf("missing required field: %s", f.name),
			}
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		return &errors.ErrValidation{
			Code:    CodeInvalidEmail,
			Message: "invalid email address",
		}
	}
	if !zipPattern.MatchString(strings.TrimSpace(s.ZipCode)) {
		return &errors.ErrValidation{
			Code:    CodeInvalidZip,
			Message: "zip code must be 5 digits or ZIP+4",
		}
	}
	return nil
}

// ValidatePayment dispatches on the method discriminator.
func (v *Validator) ValidatePayment(p *PaymentInfo) error {
	switch domain.PaymentMethod(p.Method) {
	case domain.PaymentMethodCard:
		return v.validateCard(p)
	case domain.PaymentMethodPayPal:
		if !emailPattern.MatchString(strings.TrimSpace(p.PayPalEmail)) {
			return &errors.ErrValidation{
				Code:    CodeInvalidPayPalEmail,
				Message: "invalid PayPal email address",
			}
		}
		return nil
	default:
		return &errors.ErrValidation{
			Code:    CodeUnsupportedPaymentMethod,
			Message: fmt.Sprintf("unsupported payment method: %s", p.Method),
		}
	}
}

func (v *Validator) validateCard(p *PaymentInfo) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"cardNumber", p.CardNumber},
		{"expiryDate", p.ExpiryDate},
		{"cardName", p.CardName},
		{"cvv", p.CVV},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &errors.ErrValidation{
				Code:    CodeMissingField,
				Message: fmt.Sprintf("missing required field: %s", f.name),
			}
		}
	}

	cardNumber := spacePattern.ReplaceAllString(p.CardNumber, "")
	if !cardPattern.MatchString(cardNumber) {
		return &errors.ErrValidation{
			Code:    CodeInvalidCard,
			Message: "card number must be 13-19 digits",
		}
	}
	if !expiryPattern.MatchString(strings.TrimSpace(p.ExpiryDate)) {
		return &errors.ErrValidation{
			Code:    CodeInvalidExpiry,
			Message: "expiry date must be in MM/YY format",
		}
	}
	if !cvvPattern.MatchString(strings.TrimSpace(p.CVV)) {
		return &errors.ErrValidation{
			Code:    CodeInvalidCVV,
			Message: "cvv must be 3 or 4 digits",
		}
	}
	return nil
}
