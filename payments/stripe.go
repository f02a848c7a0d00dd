// Package payments wraps the Stripe API for invoice payment collection.
package payments

import (
	"os"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

type StripeClient struct {
	publishableKey string
}

func NewStripeClient() *StripeClient {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeClient{
		publishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
	}
}

// PublishableKey is handed to the browser widget.
func (s *StripeClient) PublishableKey() string {
	return s.publishableKey
}

// CreatePaymentIntent opens a payment for the given amount in cents.
func (s *StripeClient) CreatePaymentIntent(amountCents int64, currency, invoiceNumber string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("invoice_number", invoiceNumber)

	return paymentintent.New(params)
}

// CreateCheckoutSession opens a hosted checkout page for the invoice.
func (s *StripeClient) CreateCheckoutSession(amountCents int64, currency, invoiceNumber, successURL, cancelURL string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Invoice " + invoiceNumber),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("invoice_number", invoiceNumber)

	return session.New(params)
}

// GetPaymentIntent polls the payment status.
func (s *StripeClient) GetPaymentIntent(id string) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, nil)
}
