package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
)

// CheckoutRequest carries everything the payment processor needs to open a
// hosted checkout page for one promotion purchase.
type CheckoutRequest struct {
	ListingID    uuid.UUID
	UserID       uuid.UUID
	Kind         promotion.Kind
	DurationDays int
	AmountCents  int64
	Label        string
}

// CheckoutSession is the processor's answer: an opaque session id and the URL
// the buyer is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutGateway abstracts the payment processor so command handlers and
// tests never touch its SDK directly.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}
