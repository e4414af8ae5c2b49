package payment

import (
	"context"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/config"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/errs"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
)

var (
	ErrSessionCreation   = errs.New("failed to create checkout session")
	ErrInvalidSignature  = errs.New("webhook signature verification failed")
	ErrUnexpectedPayload = errs.New("unexpected webhook payload")
)

// Metadata keys attached to every checkout session. The webhook reads them
// back to know which listing and promotion the payment was for.
const (
	MetadataListingID     = "listing_id"
	MetadataUserID        = "user_id"
	MetadataPromotionType = "promotion_type"
	MetadataDurationDays  = "duration_days"
)

type StripeGateway struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyEUR)),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Label),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata(MetadataListingID, req.ListingID.String())
	params.AddMetadata(MetadataUserID, req.UserID.String())
	params.AddMetadata(MetadataPromotionType, req.Kind.String())
	params.AddMetadata(MetadataDurationDays, strconv.Itoa(req.DurationDays))

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Mark(infra.WrapRepoErr("stripe checkout session creation failed", err), ErrSessionCreation)
	}

	return &commands.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the raw body and
// returns the parsed event. Callers must pass the body exactly as received;
// any re-serialization breaks the signature.
func (g *StripeGateway) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return stripe.Event{}, errs.Mark(err, ErrInvalidSignature)
	}
	return event, nil
}
