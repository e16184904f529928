package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swiftmart/checkout-api/internal/checkout"
	"github.com/swiftmart/checkout-api/internal/config"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

// Simulator stands in for a real payment gateway: it approves charges with a
// configured probability. Payment details never leave the process.
type Simulator struct {
	successRate float64
	mu          sync.Mutex
	rng         *rand.Rand
	logger      *zap.Logger
}

// NewSimulator creates a simulator seeded from the wall clock.
func NewSimulator(cfg config.PaymentConfig, logger *zap.Logger) *Simulator {
	return NewSimulatorWithSource(cfg.SuccessRate, rand.New(rand.NewSource(time.Now().UnixNano())), logger)
}

// NewSimulatorWithSource creates a simulator with an explicit random source
// so tests can fix the outcome.
func NewSimulatorWithSource(successRate float64, rng *rand.Rand, logger *zap.Logger) *Simulator {
	return &Simulator{
		successRate: successRate,
		rng:         rng,
		logger:      logger,
	}
}

// Charge draws a random outcome. On success it returns a transaction id; on
// refusal it returns *errors.ErrPaymentDeclined. Only the method ever makes
// it into logs.
func (s *Simulator) Charge(ctx context.Context, payment *checkout.PaymentInfo, amount float64) (string, error) {
	s.mu.Lock()
	draw := s.rng.Float64()
	s.mu.Unlock()

	if draw >= s.successRate {
		return "", &errors.ErrPaymentDeclined{
			Reason: "the payment could not be processed, please try a different payment method",
		}
	}

	transactionID := "TXN-" + uuid.New().String()
	s.logger.Debug("Charge approved",
		zap.String("transaction_id", transactionID),
		zap.String("method", payment.Method),
		zap.Float64("amount", amount),
	)
	return transactionID, nil
}
