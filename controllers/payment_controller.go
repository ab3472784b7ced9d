package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mohammaduzzal/bistro-boss-server/middleware"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.uber.org/zap"
)

var (
	validate = validator.New()
	timeNow  = time.Now
)

// IntentCreator reserves a provider charge and returns its client secret.
type IntentCreator interface {
	CreateIntent(price float64) (string, error)
}

// CheckoutRunner commits a payment and purges the settled cart items.
type CheckoutRunner interface {
	Commit(ctx context.Context, payment *models.Payment) (*models.CheckoutResult, error)
}

// PaymentFinder reads a payer's ledger entries.
type PaymentFinder interface {
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

type PaymentController struct {
	Stripe   IntentCreator
	Checkout CheckoutRunner
	Payments PaymentFinder
}

func NewPaymentController(stripe IntentCreator, checkout CheckoutRunner, payments PaymentFinder) *PaymentController {
	return &PaymentController{Stripe: stripe, Checkout: checkout, Payments: payments}
}

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreatePaymentIntent reserves a charge for the given price and returns the
// client secret.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price must be greater than zero"})
		return
	}

	clientSecret, err := pc.Stripe.CreateIntent(req.Price)
	if err != nil {
		zap.L().Error("Failed to create payment intent", zap.Float64("price", req.Price), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// GetPayments returns the payment history for an email. Callers may only
// read their own history.
func (pc *PaymentController) GetPayments(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.ClaimedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	payments, err := pc.Payments.FindByEmail(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Failed to list payments", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

type paymentPayload struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	TransactionID string   `json:"transactionId"`
	CartIDs       []string `json:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds"`
	Status        string   `json:"status"`
}

// RecordPayment commits a checkout: the payment is appended to the ledger
// first, then the listed cart items are purged.
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	var payload paymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	if err := validate.Struct(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment payload"})
		return
	}

	payment := models.Payment{
		Email:         payload.Email,
		Price:         payload.Price,
		TransactionID: payload.TransactionID,
		Date:          timeNow(),
		CartIDs:       payload.CartIDs,
		MenuItemIDs:   payload.MenuItemIDs,
		Status:        payload.Status,
	}

	result, err := pc.Checkout.Commit(c.Request.Context(), &payment)
	if err != nil {
		zap.L().Error("Checkout commit failed",
			zap.String("email", payload.Email),
			zap.String("transaction_id", payload.TransactionID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, result)
}
