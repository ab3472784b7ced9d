package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// StripeService brokers payment intents with Stripe. It holds no local
// state; provider failures propagate to the caller.
type StripeService struct{}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{}
}

// CreateIntent reserves a card-payable USD charge for the given price and
// returns the client secret needed to complete payment client-side.
func (s *StripeService) CreateIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}
	return pi.ClientSecret, nil
}

// MinorUnits converts a decimal dollar amount to integer cents, truncating
// any digits past the second decimal place. 19.99 becomes 1999 and 19.999
// becomes 1999, never 2000.
func MinorUnits(price float64) int64 {
	text := strconv.FormatFloat(price, 'f', -1, 64)

	whole, frac, _ := strings.Cut(text, ".")
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0
	}
	if dollars < 0 || strings.HasPrefix(whole, "-") {
		return dollars*100 - cents
	}
	return dollars*100 + cents
}
