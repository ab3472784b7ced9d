package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mohammaduzzal/bistro-boss-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockLedger struct{ mock.Mock }

func (m *MockLedger) Insert(ctx context.Context, payment *models.Payment) (models.InsertResult, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

type MockPurger struct{ mock.Mock }

func (m *MockPurger) DeleteByIDs(ctx context.Context, ids []string) (models.DeleteResult, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishPaymentRecorded(ctx context.Context, event models.PaymentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testPayment() *models.Payment {
	return &models.Payment{
		Email:         "alice@example.com",
		Price:         42.5,
		TransactionID: "tx_123",
		CartIDs:       []string{"65f000000000000000000001", "65f000000000000000000002"},
		MenuItemIDs:   []string{"m1", "m2"},
	}
}

func TestCheckoutCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success returns both acknowledgments", func(t *testing.T) {
		// Arrange
		ledger := new(MockLedger)
		purger := new(MockPurger)
		payment := testPayment()

		var calls []string
		ledger.On("Insert", ctx, payment).
			Run(func(mock.Arguments) { calls = append(calls, "insert") }).
			Return(models.InsertResult{InsertedID: "p1"}, nil).Once()
		purger.On("DeleteByIDs", ctx, payment.CartIDs).
			Run(func(mock.Arguments) { calls = append(calls, "purge") }).
			Return(models.DeleteResult{DeletedCount: 2}, nil).Once()

		svc := NewCheckoutService(ledger, purger, nil)

		// Act
		result, err := svc.Commit(ctx, payment)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "p1", result.PaymentResult.InsertedID)
		assert.Equal(t, int64(2), result.DeleteResult.DeletedCount)
		assert.Equal(t, []string{"insert", "purge"}, calls, "ledger write must happen before the cart purge")
		ledger.AssertExpectations(t)
		purger.AssertExpectations(t)
	})

	t.Run("Ledger failure skips the cart purge", func(t *testing.T) {
		ledger := new(MockLedger)
		purger := new(MockPurger)
		payment := testPayment()

		ledger.On("Insert", ctx, payment).Return(models.InsertResult{}, errors.New("store down")).Once()

		svc := NewCheckoutService(ledger, purger, nil)
		result, err := svc.Commit(ctx, payment)

		assert.Error(t, err)
		assert.Nil(t, result)
		purger.AssertNotCalled(t, "DeleteByIDs")
	})

	t.Run("Purge failure surfaces after the payment is recorded", func(t *testing.T) {
		ledger := new(MockLedger)
		purger := new(MockPurger)
		payment := testPayment()

		ledger.On("Insert", ctx, payment).Return(models.InsertResult{InsertedID: "p1"}, nil).Once()
		purger.On("DeleteByIDs", ctx, payment.CartIDs).Return(models.DeleteResult{}, errors.New("store down")).Once()

		svc := NewCheckoutService(ledger, purger, nil)
		result, err := svc.Commit(ctx, payment)

		assert.Error(t, err)
		assert.Nil(t, result)
		ledger.AssertExpectations(t)
	})

	t.Run("Already-deleted cart ids still commit", func(t *testing.T) {
		ledger := new(MockLedger)
		purger := new(MockPurger)
		payment := testPayment()

		ledger.On("Insert", ctx, payment).Return(models.InsertResult{InsertedID: "p1"}, nil).Once()
		// Deleting absent ids is a no-op at the store.
		purger.On("DeleteByIDs", ctx, payment.CartIDs).Return(models.DeleteResult{DeletedCount: 0}, nil).Once()

		svc := NewCheckoutService(ledger, purger, nil)
		result, err := svc.Commit(ctx, payment)

		assert.NoError(t, err)
		assert.Equal(t, "p1", result.PaymentResult.InsertedID)
		assert.Equal(t, int64(0), result.DeleteResult.DeletedCount)
	})

	t.Run("Publish failure never fails the checkout", func(t *testing.T) {
		ledger := new(MockLedger)
		purger := new(MockPurger)
		publisher := new(MockPublisher)
		payment := testPayment()

		ledger.On("Insert", ctx, payment).Return(models.InsertResult{InsertedID: "p1"}, nil).Once()
		purger.On("DeleteByIDs", ctx, payment.CartIDs).Return(models.DeleteResult{DeletedCount: 2}, nil).Once()
		publisher.On("PublishPaymentRecorded", ctx, mock.AnythingOfType("models.PaymentEvent")).
			Return(errors.New("broker unreachable")).Once()

		svc := NewCheckoutService(ledger, purger, publisher)
		result, err := svc.Commit(ctx, payment)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		publisher.AssertExpectations(t)
	})
}
