package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.uber.org/zap"
)

// PaymentLedger appends completed payments.
type PaymentLedger interface {
	Insert(ctx context.Context, payment *models.Payment) (models.InsertResult, error)
}

// CartPurger bulk-deletes settled cart items by id.
type CartPurger interface {
	DeleteByIDs(ctx context.Context, ids []string) (models.DeleteResult, error)
}

// EventPublisher announces committed checkouts downstream.
type EventPublisher interface {
	PublishPaymentRecorded(ctx context.Context, event models.PaymentEvent) error
}

// CheckoutService runs the payment commit protocol: record the payment in
// the ledger, then purge the settled cart items. The two steps are not
// atomic; the ledger write always goes first so a crash between them leaves
// a recorded payment with stale cart items, never a lost payment. Cart
// purging is idempotent, so leftover items are cleaned up by a later retry
// of the delete, not by compensating the payment.
type CheckoutService struct {
	ledger PaymentLedger
	carts  CartPurger
	events EventPublisher
}

func NewCheckoutService(ledger PaymentLedger, carts CartPurger, events EventPublisher) *CheckoutService {
	return &CheckoutService{ledger: ledger, carts: carts, events: events}
}

// Commit records the payment and purges the cart items it settles. The
// returned result carries both acknowledgments.
func (s *CheckoutService) Commit(ctx context.Context, payment *models.Payment) (*models.CheckoutResult, error) {
	paymentResult, err := s.ledger.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	deleteResult, err := s.carts.DeleteByIDs(ctx, payment.CartIDs)
	if err != nil {
		// The payment is already recorded; surface the purge failure
		// rather than unwinding the ledger.
		return nil, fmt.Errorf("payment recorded but cart purge failed: %w", err)
	}

	s.publish(ctx, payment)

	return &models.CheckoutResult{
		PaymentResult: paymentResult,
		DeleteResult:  deleteResult,
	}, nil
}

// publish emits a best-effort payment.recorded event. Publish failures are
// logged and never surfaced; the checkout has already committed.
func (s *CheckoutService) publish(ctx context.Context, payment *models.Payment) {
	if s.events == nil {
		return
	}

	event := models.PaymentEvent{
		Type:          "payment.recorded",
		Email:         payment.Email,
		TransactionID: payment.TransactionID,
		Price:         payment.Price,
		CartIDs:       payment.CartIDs,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.events.PublishPaymentRecorded(ctx, event); err != nil {
		zap.L().Warn("Failed to publish payment event",
			zap.String("transaction_id", payment.TransactionID),
			zap.Error(err),
		)
	}
}
