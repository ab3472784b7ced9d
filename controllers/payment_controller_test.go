package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mohammaduzzal/bistro-boss-server/middleware"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"github.com/mohammaduzzal/bistro-boss-server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockIntentCreator struct{ mock.Mock }

func (m *MockIntentCreator) CreateIntent(price float64) (string, error) {
	args := m.Called(price)
	return args.String(0), args.Error(1)
}

type MockCheckout struct{ mock.Mock }

func (m *MockCheckout) Commit(ctx context.Context, payment *models.Payment) (*models.CheckoutResult, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}

type MockPaymentFinder struct{ mock.Mock }

func (m *MockPaymentFinder) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func TestCreatePaymentIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - returns client secret", func(t *testing.T) {
		// Arrange
		stripe := new(MockIntentCreator)
		stripe.On("CreateIntent", 19.99).Return("pi_secret_123", nil).Once()

		router := gin.New()
		router.POST("/create-payment-intent", NewPaymentController(stripe, nil, nil).CreatePaymentIntent)

		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price":19.99}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "pi_secret_123")
		stripe.AssertExpectations(t)
	})

	t.Run("Non-positive price - 400", func(t *testing.T) {
		stripe := new(MockIntentCreator)
		router := gin.New()
		router.POST("/create-payment-intent", NewPaymentController(stripe, nil, nil).CreatePaymentIntent)

		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price":0}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		stripe.AssertNotCalled(t, "CreateIntent")
	})

	t.Run("Provider failure - 500", func(t *testing.T) {
		stripe := new(MockIntentCreator)
		stripe.On("CreateIntent", 5.0).Return("", errors.New("provider unreachable")).Once()

		router := gin.New()
		router.POST("/create-payment-intent", NewPaymentController(stripe, nil, nil).CreatePaymentIntent)

		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price":5}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestGetPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := services.NewTokenService("test-secret")

	newRouter := func(finder *MockPaymentFinder) *gin.Engine {
		auth := middleware.NewAuthMiddleware(tokens, nil)
		router := gin.New()
		router.GET("/payments/:email", auth.RequireAuth(), NewPaymentController(nil, nil, finder).GetPayments)
		return router
	}

	t.Run("Own history - 200", func(t *testing.T) {
		finder := new(MockPaymentFinder)
		finder.On("FindByEmail", mock.Anything, "alice@example.com").
			Return([]models.Payment{{Email: "alice@example.com", Price: 12.5}}, nil).Once()
		router := newRouter(finder)

		token, _ := tokens.Issue(map[string]interface{}{"email": "alice@example.com"})
		req, _ := http.NewRequest(http.MethodGet, "/payments/alice@example.com", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "alice@example.com")
	})

	t.Run("Another user's history - 403, no records leaked", func(t *testing.T) {
		finder := new(MockPaymentFinder)
		router := newRouter(finder)

		token, _ := tokens.Issue(map[string]interface{}{"email": "bob@example.com"})
		req, _ := http.NewRequest(http.MethodGet, "/payments/alice@example.com", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "forbidden access")
		finder.AssertNotCalled(t, "FindByEmail")
	})
}

func TestRecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - composite acknowledgment", func(t *testing.T) {
		// Arrange
		checkout := new(MockCheckout)
		checkout.On("Commit", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Email == "alice@example.com" && len(p.CartIDs) == 2
		})).Return(&models.CheckoutResult{
			PaymentResult: models.InsertResult{InsertedID: "p1"},
			DeleteResult:  models.DeleteResult{DeletedCount: 2},
		}, nil).Once()

		router := gin.New()
		router.POST("/payments", NewPaymentController(nil, checkout, nil).RecordPayment)

		payload := `{"email":"alice@example.com","price":42.5,"transactionId":"tx_1","cartIds":["a","b"],"menuItemIds":["m1","m2"]}`
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "paymentResult")
		assert.Contains(t, recorder.Body.String(), "deleteResult")
		assert.Contains(t, recorder.Body.String(), `"deletedCount":2`)
		checkout.AssertExpectations(t)
	})

	t.Run("Commit failure - 500", func(t *testing.T) {
		checkout := new(MockCheckout)
		checkout.On("Commit", mock.Anything, mock.AnythingOfType("*models.Payment")).
			Return(nil, errors.New("store down")).Once()

		router := gin.New()
		router.POST("/payments", NewPaymentController(nil, checkout, nil).RecordPayment)

		payload := `{"email":"alice@example.com","price":42.5,"cartIds":["a"]}`
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("Missing email - 400", func(t *testing.T) {
		checkout := new(MockCheckout)
		router := gin.New()
		router.POST("/payments", NewPaymentController(nil, checkout, nil).RecordPayment)

		payload := `{"price":42.5,"cartIds":["a"]}`
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		checkout.AssertNotCalled(t, "Commit")
	})
}
