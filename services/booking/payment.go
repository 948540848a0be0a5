package booking

import (
	"context"
	"fmt"

	"serenite/models"
	"serenite/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler collects booking deposits through the payment gateway.
type PaymentHandler interface {
	CreateDepositIntent(ctx context.Context, booking *models.Booking) (string, error)
}

// StripePaymentHandler creates Stripe PaymentIntents for deposits. Capture,
// refunds and webhooks are handled by the payments subsystem, not here.
type StripePaymentHandler struct {
	Currency string
}

func NewStripePaymentHandler(currency string) *StripePaymentHandler {
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}
	return &StripePaymentHandler{Currency: currency}
}

func (h *StripePaymentHandler) CreateDepositIntent(ctx context.Context, booking *models.Booking) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(booking.DepositCents),
		Currency: stripe.String(h.Currency),
		Metadata: map[string]string{
			"bookingId":      booking.ID,
			"professionalId": booking.ProfessionalID,
			"date":           booking.Date,
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent creation failed: %w", err)
	}

	utils.GetLogger().Info("deposit intent created",
		zap.String("bookingID", booking.ID),
		zap.String("intentID", intent.ID),
		zap.Int64("amount", booking.DepositCents))
	return intent.ID, nil
}
