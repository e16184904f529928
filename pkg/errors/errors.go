package errors

import "fmt"

// ErrMalformedInput indicates the request body could not be decoded or a
// required section is missing or has the wrong shape.
type ErrMalformedInput struct {
	Message string
}

func (e *ErrMalformedInput) Error() string {
	return e.Message
}

// ErrValidation indicates a cart, shipping, or payment field failed a
// specific rule. Code is machine-distinguishable; Message is for humans.
type ErrValidation struct {
	Code    string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrPaymentDeclined indicates the payment gateway refused the charge.
type ErrPaymentDeclined struct {
	Reason string
}

func (e *ErrPaymentDeclined) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrInvalidStateTransition indicates an invalid checkout stage transition
type ErrInvalidStateTransition struct {
	From interface{}
	To   interface{}
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %v to %v", e.From, e.To)
}
