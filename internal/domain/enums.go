package domain

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	// OrderStatusConfirmed is the only terminal status a stored order can
	// have: rejected requests never produce an Order record.
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// PaymentMethod represents a supported payment method
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

// IsValid checks if the payment method is supported
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPayPal:
		return true
	default:
		return false
	}
}

// Stage represents a step of the checkout pipeline
type Stage string

const (
	StageReceived      Stage = "received"
	StageValidated     Stage = "validated"
	StagePriced        Stage = "priced"
	StageCharged       Stage = "charged"
	StageConfirmed     Stage = "confirmed"
	StageRejected      Stage = "rejected"
	StagePaymentFailed Stage = "payment_failed"
)

// CanTransitionTo checks if a stage transition is valid. The happy path is
// received -> validated -> priced -> charged -> confirmed; any validation
// stage may exit to rejected, and charging may exit to payment_failed.
func (s Stage) CanTransitionTo(next Stage) bool {
	switch s {
	case StageReceived:
		return next == StageValidated || next == StageRejected
	case StageValidated:
		return next == StagePriced || next == StageRejected
	case StagePriced:
		return next == StageCharged || next == StagePaymentFailed
	case StageCharged:
		return next == StageConfirmed
	case StageConfirmed, StageRejected, StagePaymentFailed:
		return false // Terminal states
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible
func (s Stage) IsTerminal() bool {
	switch s {
	case StageConfirmed, StageRejected, StagePaymentFailed:
		return true
	default:
		return false
	}
}
