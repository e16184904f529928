package checkout

import (
	"context"

	"go.uber.org/zap"

	"github.com/swiftmart/checkout-api/internal/catalog"
	"github.com/swiftmart/checkout-api/internal/domain"
	"github.com/swiftmart/checkout-api/internal/repository"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

// Charger is the payment gateway capability the pipeline consumes. It
// receives the full payment details so a real gateway adapter can slot in; a
// charge either yields a transaction id or fails, and failure is terminal
// for the request — the caller may resubmit.
type Charger interface {
	Charge(ctx context.Context, payment *PaymentInfo, amount float64) (string, error)
}

// Service runs the checkout pipeline: validate, price, charge, assemble,
// persist. It is stateless across requests and safe for concurrent use.
type Service struct {
	catalog    catalog.Catalog
	validator  *Validator
	calculator *Calculator
	assembler  *Assembler
	charger    Charger
	repos      *repository.Repositories
	logger     *zap.Logger
}

// NewService creates a checkout service over its collaborators.
func NewService(
	cat catalog.Catalog,
	validator *Validator,
	calculator *Calculator,
	assembler *Assembler,
	charger Charger,
	repos *repository.Repositories,
	logger *zap.Logger,
) *Service {
	return &Service{
		catalog:    cat,
		validator:  validator,
		calculator: calculator,
		assembler:  assembler,
		charger:    charger,
		repos:      repos,
		logger:     logger,
	}
}

// Checkout processes one request end to end. On success it returns the
// confirmed order; otherwise a typed error: *errors.ErrValidation for rule
// failures, *errors.ErrPaymentDeclined when the charge is refused.
func (s *Service) Checkout(ctx context.Context, req *Request) (*domain.Order, error) {
	stage := domain.StageReceived

	if err := s.validator.ValidateRequest(req); err != nil {
		s.advance(&stage, domain.StageRejected)
		return nil, err
	}
	if err := s.advance(&stage, domain.StageValidated); err != nil {
		return nil, err
	}

	items, totals := s.calculator.Price(req.Cart, s.catalog)
	if err := s.advance(&stage, domain.StagePriced); err != nil {
		return nil, err
	}

	method := domain.PaymentMethod(req.Payment.Method)
	transactionID, err := s.charger.Charge(ctx, req.Payment, totals.Total)
	if err != nil {
		s.advance(&stage, domain.StagePaymentFailed)
		if declined, ok := err.(*errors.ErrPaymentDeclined); ok {
			s.logger.Info("Payment declined",
				zap.String("method", string(method)),
				zap.Float64("amount", totals.Total),
				zap.String("reason", declined.Reason),
			)
			return nil, declined
		}
		return nil, err
	}
	if err := s.advance(&stage, domain.StageCharged); err != nil {
		return nil, err
	}

	order := s.assembler.Assemble(req.Shipping, method, items, totals, transactionID)
	if err := s.advance(&stage, domain.StageConfirmed); err != nil {
		return nil, err
	}

	// The order is already charged and confirmed; a store failure is logged
	// but does not fail the request.
	if err := s.repos.Orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("Order confirmed",
		zap.String("order_id", order.ID),
		zap.String("tracking_number", order.TrackingNumber),
		zap.Float64("total", totals.Total),
	)
	return order, nil
}

func (s *Service) advance(stage *domain.Stage, next domain.Stage) error {
	if !stage.CanTransitionTo(next) {
		return &errors.ErrInvalidStateTransition{From: *stage, To: next}
	}
	*stage = next
	return nil
}
